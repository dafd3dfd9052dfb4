package cmd

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"math/rand"
	"net/http"
	"strconv"
	"sync"

	"github.com/Masterminds/sprig"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/config"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/midi"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/progression"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/scale"
	"github.com/jsphweid/chordgen/session"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//go:embed templates/*.html
var templateFS embed.FS

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the progression API and web page",
	Long:  `Serves the progression API and web page`,
	Run: func(cmd *cobra.Command, args []string) {
		store := session.NewStore(cfg.Server.SessionTTL, cfg.Server.SweepDelay)
		go store.SweepEvery(cmd.Context(), cfg.Server.SweepInterval)
		handler, err := NewRouter(store, cfg)
		cobra.CheckErr(err)

		addr := ":" + cfg.Server.Port
		logrus.WithField("addr", addr).Info("serving")
		cobra.CheckErr(http.ListenAndServe(addr, handler))
	},
}

type server struct {
	store  *session.Store
	cfg    config.Config
	index  *template.Template
	randMu sync.Mutex
	rand   *rand.Rand
}

// NewRouter wires every route behind CORS.
func NewRouter(store *session.Store, c config.Config) (http.Handler, error) {
	index, err := template.New("index.html").Funcs(sprig.HtmlFuncMap()).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, errors.Wrap(err, "could not parse templates")
	}

	srv := &server{store: store, cfg: c, index: index, rand: newRand(c)}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/", srv.handleIndex).Methods("GET")
	router.HandleFunc("/progressions", srv.handleCreate).Methods("POST")
	router.HandleFunc("/progressions/{id}", srv.handleGet).Methods("GET")
	router.HandleFunc("/progressions/{id}/chords", srv.handleAddChord).Methods("POST")
	router.HandleFunc("/progressions/{id}/chords/{index:[0-9]+}", srv.handleRemoveChord).Methods("DELETE")
	router.HandleFunc("/progressions/{id}/chords/{index:[0-9]+}/root", srv.handleSetRoot).Methods("PUT")
	router.HandleFunc("/progressions/{id}/chords/{index:[0-9]+}/quality", srv.handleSetQuality).Methods("PUT")
	router.HandleFunc("/progressions/{id}/chords/{index:[0-9]+}/invert", srv.handleInvert).Methods("POST")
	router.HandleFunc("/progressions/{id}/chords/{index:[0-9]+}/reading", srv.handleSelectReading).Methods("PUT")
	router.HandleFunc("/progressions/{id}/key", srv.handleSetKey).Methods("PUT")
	router.HandleFunc("/progressions/{id}/key/transpose", srv.handleTransposeKey).Methods("POST")
	router.HandleFunc("/progressions/{id}/spelling", srv.handleSelectSpelling).Methods("PUT")
	router.HandleFunc("/progressions/{id}/randomize", srv.handleRandomize).Methods("POST")
	router.HandleFunc("/progressions/{id}/midi", srv.handleMidi).Methods("GET")

	return cors.New(cors.Options{
		AllowedOrigins: c.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}).Handler(router), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("could not encode response")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, progression.ErrIndexOutOfRange),
		errors.Is(err, progression.ErrFull),
		errors.Is(err, progression.ErrEmpty),
		errors.Is(err, pitchclass.ErrUnknownPitchClass),
		errors.Is(err, quality.ErrUnknownQuality),
		errors.Is(err, scale.ErrUnknownReferentialScale),
		errors.Is(err, scale.ErrUnknownNotation),
		errors.Is(err, scale.ErrRepresentationOutRange),
		errors.Is(err, chord.ErrRepresentationOutOfRange),
		errors.Is(err, session.ErrTooManySteps),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrapf(errBadRequest, "could not decode request body: %v", err)
	}
	return nil
}

func chordIndex(r *http.Request) int {
	// the route pattern only admits digits
	index, _ := strconv.Atoi(mux.Vars(r)["index"])
	return index
}

// mutate applies f to the session named in the route and responds with the
// resulting view.
func (srv *server) mutate(w http.ResponseWriter, r *http.Request, f func(s *session.Session) error) {
	var view model.ProgressionView
	err := srv.store.Do(mux.Vars(r)["id"], func(s *session.Session) error {
		if err := f(s); err != nil {
			return err
		}
		view = s.View()
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type indexPage struct {
	PitchClasses      []pitchclass.PitchClass
	Qualities         []quality.ChordQuality
	ReferentialScales []scale.ReferentialScale
	MaxChords         int
}

func (srv *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := srv.index.Execute(&buf, indexPage{
		PitchClasses:      pitchclass.All(),
		Qualities:         quality.All(),
		ReferentialScales: scale.AllReferentialScales(),
		MaxChords:         constants.MaxChords,
	})
	if err != nil {
		writeError(w, errors.Wrap(err, "could not render index"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (srv *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	s, err := srv.cfg.Scale()
	if err != nil {
		writeError(w, err)
		return
	}

	srv.randMu.Lock()
	sess, err := session.NewRandom(s, srv.cfg.Progression.Octave, srv.cfg.Progression.NumChords, srv.rand)
	srv.randMu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	srv.store.Add(sess)
	logrus.WithField("session", sess.Id()).Debug("created session")
	writeJSON(w, http.StatusCreated, sess.View())
}

func (srv *server) handleGet(w http.ResponseWriter, r *http.Request) {
	srv.mutate(w, r, func(s *session.Session) error { return nil })
}

func (srv *server) handleAddChord(w http.ResponseWriter, r *http.Request) {
	var body model.AddChordRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	srv.mutate(w, r, func(s *session.Session) error {
		index := s.Progression().GetNumChords()
		if body.Index != nil {
			index = *body.Index
		}
		return s.AddChord(index)
	})
}

func (srv *server) handleRemoveChord(w http.ResponseWriter, r *http.Request) {
	index := chordIndex(r)
	srv.mutate(w, r, func(s *session.Session) error { return s.RemoveChord(index) })
}

func (srv *server) handleSetRoot(w http.ResponseWriter, r *http.Request) {
	var body model.SetRootRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	pc, err := pitchclass.Parse(body.PitchClass)
	if err != nil {
		writeError(w, err)
		return
	}
	index := chordIndex(r)
	srv.mutate(w, r, func(s *session.Session) error {
		octave := srv.cfg.Progression.Octave
		if body.Octave != nil {
			octave = *body.Octave
		} else if c, err := s.Progression().GetChord(index); err == nil {
			octave = c.GetOctaveAt(0)
		}
		return s.SetChordRootNote(index, pc, octave)
	})
}

func (srv *server) handleSetQuality(w http.ResponseWriter, r *http.Request) {
	var body model.SetQualityRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	q, err := quality.Parse(body.Quality)
	if err != nil {
		writeError(w, err)
		return
	}
	index := chordIndex(r)
	srv.mutate(w, r, func(s *session.Session) error { return s.SetChordQuality(index, q) })
}

func (srv *server) handleInvert(w http.ResponseWriter, r *http.Request) {
	var body model.InvertRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	index := chordIndex(r)
	srv.mutate(w, r, func(s *session.Session) error { return s.InvertChord(index, body.Steps) })
}

func (srv *server) handleSetKey(w http.ResponseWriter, r *http.Request) {
	var body model.SetKeyRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	root, err := pitchclass.Parse(body.Root)
	if err != nil {
		writeError(w, err)
		return
	}
	ref := scale.DefaultReferentialScale
	if body.ReferentialScale != "" {
		if ref, err = scale.ParseReferentialScale(body.ReferentialScale); err != nil {
			writeError(w, err)
			return
		}
	}
	srv.mutate(w, r, func(s *session.Session) error { return s.SetKey(root, ref) })
}

func (srv *server) handleTransposeKey(w http.ResponseWriter, r *http.Request) {
	var body model.TransposeKeyRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	srv.mutate(w, r, func(s *session.Session) error { return s.TransposeKey(body.HalfSteps) })
}

func (srv *server) handleSelectSpelling(w http.ResponseWriter, r *http.Request) {
	var body model.SelectSpellingRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	pc, err := pitchclass.Parse(body.PitchClass)
	if err != nil {
		writeError(w, err)
		return
	}
	notation, err := scale.ParseNotation(body.Notation)
	if err != nil {
		writeError(w, err)
		return
	}
	srv.mutate(w, r, func(s *session.Session) error { return s.SelectSpelling(notation, pc, body.Index) })
}

func (srv *server) handleSelectReading(w http.ResponseWriter, r *http.Request) {
	var body model.SelectReadingRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}
	index := chordIndex(r)
	srv.mutate(w, r, func(s *session.Session) error { return s.SelectReading(index, body.Reading) })
}

func (srv *server) handleRandomize(w http.ResponseWriter, r *http.Request) {
	srv.mutate(w, r, func(s *session.Session) error {
		srv.randMu.Lock()
		defer srv.randMu.Unlock()
		s.Randomize(srv.rand)
		return nil
	})
}

func (srv *server) handleMidi(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := srv.store.Do(mux.Vars(r)["id"], func(s *session.Session) error {
		return midi.WriteProgression(&buf, s.Progression().GetChords(), exportOptions(srv.cfg))
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", `attachment; filename="progression.mid"`)
	w.Write(buf.Bytes())
}
