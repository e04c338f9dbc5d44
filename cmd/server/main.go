// Command server exposes the wordforms morphology core as a JSON REST API.
//
// Endpoints:
//
//	GET /api/plural?word=<word>
//	GET /api/singular?word=<word>
//	GET /api/lemma?word=<word>
//	GET /api/words?word=<word>[&inclusive=true]
//	GET /api/lemma/forms?lemma=<lemma>
//	GET /api/alternates?word=<word>
//	GET /metrics
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	wordforms "github.com/fluent-search/wordforms"
	"github.com/fluent-search/wordforms/internal/altcache"
)

// ---- metrics ------------------------------------------------------------

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordforms_requests_total",
		Help: "API requests by handler and status code.",
	}, []string{"handler", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordforms_request_duration_seconds",
		Help:    "API request latency by handler.",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wordforms_alternates_cache_hits_total",
		Help: "Alternates served from the persistent cache.",
	})
)

func instrument(name string, h http.Handler) http.Handler {
	h = promhttp.InstrumentHandlerDuration(requestDuration.MustCurryWith(prometheus.Labels{"handler": name}), h)
	return promhttp.InstrumentHandlerCounter(requestsTotal.MustCurryWith(prometheus.Labels{"handler": name}), h)
}

// ---- JSON response types ------------------------------------------------

type inflectionResponse struct {
	Word       string `json:"word"`
	Result     string `json:"result"`
	IsPlural   bool   `json:"is_plural"`
	IsSingular bool   `json:"is_singular"`
}

type lemmaResponse struct {
	Word  string `json:"word"`
	Lemma string `json:"lemma"`
}

type wordsResponse struct {
	Word      string   `json:"word"`
	Inclusive bool     `json:"inclusive"`
	Words     []string `json:"words"`
}

type formsResponse struct {
	Lemma string   `json:"lemma"`
	Forms []string `json:"forms"`
}

type alternatesResponse struct {
	Word       string   `json:"word"`
	Alternates []string `json:"alternates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// wordParam extracts and normalizes the named query parameter, writing
// a 400 response when it is missing.
func wordParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := wordforms.Normalize(r.URL.Query().Get(name))
	if v == "" {
		writeError(w, http.StatusBadRequest, "missing '"+name+"' query parameter")
		return "", false
	}
	return v, true
}

// ---- handlers -----------------------------------------------------------

func handlePlural(tools *wordforms.Tools) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word, ok := wordParam(w, r, "word")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, inflectionResponse{
			Word:       word,
			Result:     tools.Inflector.Plural(word),
			IsPlural:   tools.Inflector.IsPlural(word),
			IsSingular: tools.Inflector.IsSingular(word),
		})
	}
}

func handleSingular(tools *wordforms.Tools) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word, ok := wordParam(w, r, "word")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, inflectionResponse{
			Word:       word,
			Result:     tools.Inflector.Singular(word),
			IsPlural:   tools.Inflector.IsPlural(word),
			IsSingular: tools.Inflector.IsSingular(word),
		})
	}
}

func handleLemma(tools *wordforms.Tools) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word, ok := wordParam(w, r, "word")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, lemmaResponse{
			Word:  word,
			Lemma: tools.Lemmatizer.Lemma(word),
		})
	}
}

func handleWords(tools *wordforms.Tools) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word, ok := wordParam(w, r, "word")
		if !ok {
			return
		}
		inclusive, _ := strconv.ParseBool(r.URL.Query().Get("inclusive"))
		writeJSON(w, http.StatusOK, wordsResponse{
			Word:      word,
			Inclusive: inclusive,
			Words:     tools.Lemmatizer.Words(word, inclusive),
		})
	}
}

func handleLemmaForms(tools *wordforms.Tools) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lemma, ok := wordParam(w, r, "lemma")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, formsResponse{
			Lemma: lemma,
			Forms: tools.Lemmatizer.WordsFromLemma(lemma),
		})
	}
}

func handleAlternates(tools *wordforms.Tools, cache *altcache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word, ok := wordParam(w, r, "word")
		if !ok {
			return
		}
		if !wordforms.IsWordToken(word) {
			writeError(w, http.StatusBadRequest, "'word' must be alphanumeric")
			return
		}

		if cache != nil {
			if alts, hit, err := cache.Get(word); err != nil {
				log.Printf("cache get %q: %v", word, err)
			} else if hit {
				cacheHits.Inc()
				writeJSON(w, http.StatusOK, alternatesResponse{Word: word, Alternates: alts})
				return
			}
		}

		alts := tools.Alternates(word)
		if cache != nil {
			if err := cache.Put(word, alts); err != nil {
				log.Printf("cache put %q: %v", word, err)
			}
		}
		writeJSON(w, http.StatusOK, alternatesResponse{Word: word, Alternates: alts})
	}
}

// ---- main ---------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; flags still win over the environment.
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("WORDFORMS_ADDR", ":8080"), "listen address")
	lexicon := flag.String("lexicon", os.Getenv("WORDFORMS_LEXICON"), "path to a lexicon file (default: embedded)")
	cacheDir := flag.String("cache-dir", os.Getenv("WORDFORMS_CACHE_DIR"), "directory for the persistent alternates cache (empty: disabled)")
	flag.Parse()

	var (
		tools *wordforms.Tools
		err   error
	)
	if *lexicon != "" {
		log.Printf("loading lexicon from %s …", *lexicon)
		tools, err = wordforms.NewFromFile(*lexicon)
	} else {
		tools, err = wordforms.New()
	}
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Println("lexicon loaded")

	var cache *altcache.Cache
	if *cacheDir != "" {
		cache, err = altcache.Open(*cacheDir)
		if err != nil {
			log.Fatalf("failed to open alternates cache: %v", err)
		}
		defer cache.Close()
		log.Printf("alternates cache at %s", *cacheDir)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /api/plural", instrument("plural", handlePlural(tools)))
	mux.Handle("GET /api/singular", instrument("singular", handleSingular(tools)))
	mux.Handle("GET /api/lemma", instrument("lemma", handleLemma(tools)))
	mux.Handle("GET /api/words", instrument("words", handleWords(tools)))
	mux.Handle("GET /api/lemma/forms", instrument("lemma_forms", handleLemmaForms(tools)))
	mux.Handle("GET /api/alternates", instrument("alternates", handleAlternates(tools, cache)))
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
