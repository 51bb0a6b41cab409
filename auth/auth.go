package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pokeblog/db"
	"pokeblog/globals"
	"pokeblog/middleware"
	"pokeblog/models"
	"pokeblog/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an editor account. Editors are CMS logins, not content.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || len(input.Password) < 8 {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and a password of at least 8 characters are required")
		return
	}

	count, err := db.EditorsCollection.CountDocuments(context.TODO(), bson.M{"username": input.Username})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check username")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Username already taken")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	editor := models.Editor{
		EditorID:     utils.GetUUID(),
		Username:     input.Username,
		PasswordHash: string(hashed),
		Role:         []string{"editor"},
		CreatedAt:    time.Now(),
	}

	if _, err := db.EditorsCollection.InsertOne(context.TODO(), editor); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create editor")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"editorid": editor.EditorID,
		"username": editor.Username,
	})
}

// Login verifies credentials and issues a JWT bearer token.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input credentials
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	var editor models.Editor
	err := db.EditorsCollection.FindOne(context.TODO(), bson.M{"username": input.Username}).Decode(&editor)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(editor.PasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := generateToken(editor)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	_, _ = db.EditorsCollection.UpdateOne(
		context.TODO(),
		bson.M{"editorid": editor.EditorID},
		bson.M{"$set": bson.M{"last_login": time.Now()}},
	)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":    token,
		"editorid": editor.EditorID,
	})
}

func generateToken(editor models.Editor) (string, error) {
	claims := &middleware.Claims{
		Username: editor.Username,
		UserID:   editor.EditorID,
		Role:     editor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
