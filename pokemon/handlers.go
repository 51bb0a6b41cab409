package pokemon

import (
	"errors"
	"net/http"

	"pokeblog/utils"

	"github.com/julienschmidt/httprouter"
)

var client = NewClient()

// GetPokemon resolves a Pokemon snapshot for the editor to embed in a
// blog document. The snapshot is stored verbatim and never refreshed.
func GetPokemon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, err := client.Fetch(r.Context(), ps.ByName("name"))
	if errors.Is(err, ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Pokemon not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to fetch Pokemon data")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// SearchPokemon suggests species names for the given prefix.
func SearchPokemon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	prefix := r.URL.Query().Get("q")
	if prefix == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing query parameter: q")
		return
	}

	names, err := client.SearchSpecies(r.Context(), prefix, 10)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to search Pokemon species")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"results": names})
}
