// Command server exposes the glossa word generator as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/word?mode=<lexicon|text>[&seed=N][&syllables=N][&morphology=false][&trace=true]
//	POST /api/batch            body: {"count":N,"mode":"...","seed":N,"seeded":true,...}
//	GET  /ws/stream            websocket; pushes words as JSON frames
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/wordforge/glossa"
	"github.com/wordforge/glossa/english"
)

// ---- JSON response types ------------------------------------------------

type syllableJSON struct {
	Onset   []string `json:"onset"`
	Nucleus []string `json:"nucleus"`
	Coda    []string `json:"coda"`
	Stress  string   `json:"stress,omitempty"`
}

type traceJSON struct {
	Decisions         int  `json:"decisions"`
	RepairPasses      int  `json:"repair_passes"`
	MorphologyApplied bool `json:"morphology_applied"`
}

type wordJSON struct {
	Written       string         `json:"written"`
	Hyphenated    string         `json:"hyphenated"`
	Pronunciation string         `json:"pronunciation"`
	Syllables     []syllableJSON `json:"syllables"`
	Trace         *traceJSON     `json:"trace,omitempty"`
}

type batchRequest struct {
	Count         int    `json:"count"`
	Mode          string `json:"mode"`
	Seed          int64  `json:"seed"`
	Seeded        bool   `json:"seeded"`
	SyllableCount int    `json:"syllables"`
	NoMorphology  bool   `json:"no_morphology"`
}

type batchResponse struct {
	Words []wordJSON `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func stressName(s glossa.Stress) string {
	switch s {
	case glossa.StressPrimary:
		return "primary"
	case glossa.StressSecondary:
		return "secondary"
	default:
		return ""
	}
}

func symbols(ps []*glossa.Phoneme) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Sound()
	}
	return out
}

func toWordJSON(w *glossa.Word) wordJSON {
	sylls := make([]syllableJSON, len(w.Syllables))
	for i, s := range w.Syllables {
		sylls[i] = syllableJSON{
			Onset:   symbols(s.Onset),
			Nucleus: symbols(s.Nucleus),
			Coda:    symbols(s.Coda),
			Stress:  stressName(s.Stress),
		}
	}
	out := wordJSON{
		Written:       w.Written,
		Hyphenated:    w.Hyphenated,
		Pronunciation: w.Pronunciation,
		Syllables:     sylls,
	}
	if w.Trace != nil {
		out.Trace = &traceJSON{
			Decisions:         w.Trace.Decisions(),
			RepairPasses:      w.Trace.RepairPasses,
			MorphologyApplied: w.Trace.MorphologyApplied,
		}
	}
	return out
}

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

// optionsFromQuery builds generation options from URL query parameters.
func optionsFromQuery(r *http.Request) (glossa.Options, error) {
	opts := glossa.DefaultOptions()
	opts.Trace, _ = strconv.ParseBool(r.URL.Query().Get("trace"))
	if m := r.URL.Query().Get("mode"); m != "" {
		mode, err := glossa.ParseMode(m)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if s := r.URL.Query().Get("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return opts, err
		}
		opts.Seed = seed
		opts.Seeded = true
	}
	if s := r.URL.Query().Get("syllables"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return opts, err
		}
		opts.SyllableCount = n
	}
	if m := r.URL.Query().Get("morphology"); m != "" {
		opts.Morphology, _ = strconv.ParseBool(m)
	}
	return opts, nil
}

// ---- handlers -----------------------------------------------------------

func handleWord(g *glossa.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		opts, err := optionsFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		word, err := g.Generate(opts)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toWordJSON(word))
	}
}

const maxBatch = 10000

func handleBatch(g *glossa.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body batchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "body must be a JSON batch request")
			return
		}
		if body.Count < 1 || body.Count > maxBatch {
			writeError(w, http.StatusBadRequest, "'count' must be between 1 and 10000")
			return
		}
		opts := glossa.DefaultOptions()
		if body.Mode != "" {
			mode, err := glossa.ParseMode(body.Mode)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			opts.Mode = mode
		}
		opts.Seed = body.Seed
		opts.Seeded = body.Seeded
		opts.SyllableCount = body.SyllableCount
		opts.Morphology = !body.NoMorphology

		words, err := g.GenerateBatch(body.Count, opts)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]wordJSON, len(words))
		for i, word := range words {
			out[i] = toWordJSON(word)
		}
		writeJSON(w, http.StatusOK, batchResponse{Words: out})
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is public read-only data; origins are left open, matching
	// the permissive CORS policy of the REST endpoints.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const maxStream = 100000

// handleStream pushes generated words over a websocket, one JSON frame
// per word, then closes. Count and options come from query parameters.
func handleStream(g *glossa.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := optionsFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		count := 10
		if s := r.URL.Query().Get("count"); s != "" {
			if count, err = strconv.Atoi(s); err != nil || count < 1 || count > maxStream {
				writeError(w, http.StatusBadRequest, "'count' must be between 1 and 100000")
				return
			}
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for i := 0; i < count; i++ {
			o := opts
			if o.Seeded {
				o.Seed = opts.Seed + int64(i)
			}
			word, err := g.Generate(o)
			if err != nil {
				_ = conn.WriteJSON(errorResponse{Error: err.Error()})
				return
			}
			if err := conn.WriteJSON(toWordJSON(word)); err != nil {
				return
			}
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	g, err := glossa.New(english.Config())
	if err != nil {
		log.Fatalf("failed to build generator: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/word", handleWord(g))
	mux.HandleFunc("/api/batch", handleBatch(g))
	mux.HandleFunc("/ws/stream", handleStream(g))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
