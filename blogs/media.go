package blogs

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"pokeblog/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const blogPicDir = "static/blogpic"

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadImage stores a featured image and a 300px-wide thumbnail, and
// returns the URLs the blog document should reference.
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	if !supportedImageTypes[header.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF.")
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to decode image")
		return
	}

	uniqueID := utils.GenerateRandomString(16)
	fileName := uniqueID + ".jpg"
	originalPath := filepath.Join(blogPicDir, fileName)
	thumbDir := filepath.Join(blogPicDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}

	if err := imaging.Save(img, originalPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save thumbnail")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"imageUrl": fmt.Sprintf("/static/blogpic/%s", fileName),
		"thumbUrl": fmt.Sprintf("/static/blogpic/thumb/%s", fileName),
	})
}
