package blogs

import (
	"errors"
	"net/http"
	"os"

	"pokeblog/cms"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetBlogQR returns a PNG QR code pointing at the blog's canonical URL.
func GetBlogQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")

	if _, err := cms.GetBlogBySlug(r.Context(), slug); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Blog not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch blog", http.StatusInternalServerError)
		return
	}

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:3000"
	}

	qrPNG, err := qrcode.Encode(siteURL+"/blog/"+slug, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(qrPNG)
}
