package authors

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pokeblog/db"
	"pokeblog/models"
	"pokeblog/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateAuthor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Name     string `json:"name"`
		Position string `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Author name is required")
		return
	}

	author := models.Author{
		ID:        utils.GetUUID(),
		Type:      "author",
		Name:      payload.Name,
		Position:  payload.Position,
		CreatedAt: time.Now(),
	}

	if _, err := db.AuthorsCollection.InsertOne(r.Context(), author); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create author")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, author)
}

func ListAuthors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := db.AuthorsCollection.Find(r.Context(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch authors")
		return
	}
	defer cur.Close(r.Context())

	authors := []models.Author{}
	if err := cur.All(r.Context(), &authors); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode authors")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"authors": authors})
}
