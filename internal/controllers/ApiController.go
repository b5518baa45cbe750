package controllers

import (
	"net/http"
	"strings"
	"studynexus/internal/models"
	"studynexus/internal/providers"
	"studynexus/internal/services"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// ApiController serves the read side: seed catalogs from the cache and the
// live account state straight from the service.
type ApiController struct {
	logger  providers.Logger
	service services.AccountServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.AccountServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) GetMarketplace(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "marketplace", func() (any, error) {
		return models.MarketplaceItems, nil
	})
}

func (ac *ApiController) GetTutors(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "tutors", func() (any, error) {
		return models.Tutors, nil
	})
}

func (ac *ApiController) GetVoices(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "voices", func() (any, error) {
		return models.Voices, nil
	})
}

// GetCommunity searches the seeded students by name, major or school. The
// connected user never appears in their own results.
func (ac *ApiController) GetCommunity(w http.ResponseWriter, r *http.Request) {
	term := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	var self string
	if p := ac.service.Overview().Profile; p != nil {
		self = p.Address
	}
	ac.serveFromCacheOrCompute(w, "community:"+self+":"+term, func() (any, error) {
		return models.SearchStudents(term, self), nil
	})
}

func (ac *ApiController) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Overview())
}

func (ac *ApiController) GetStaking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.StakingPosition())
}

func (ac *ApiController) GetCredentials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Credentials())
}

// GetSessions lists past sessions newest first; limit <= 0 returns all.
func (ac *ApiController) GetSessions(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	writeJSON(w, http.StatusOK, ac.service.Sessions(limit))
}

func (ac *ApiController) GetModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Modules())
}

func (ac *ApiController) GetReminders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Reminders())
}
