package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/domains"
	"github.com/abhisek/careerquest/internal/locale"
	qb "github.com/abhisek/careerquest/internal/questionbank"
	"github.com/abhisek/careerquest/internal/recommend"
	"github.com/abhisek/careerquest/internal/scoring"
	"github.com/abhisek/careerquest/internal/session"
)

var errSessionActive = errors.New("session is not completed")

func localeFrom(r *http.Request) locale.Locale {
	return locale.Parse(r.URL.Query().Get("locale"))
}

func (s *Server) categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		p, err := catalog.ParseProfile(q.Get("stage"), q.Get("stream"), q.Get("exam"), q.Get("degree"))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"profile":    p,
			"categories": catalog.ValidCategories(p),
			"careers":    catalog.ValidCareers(p),
		})
	}
}

func (s *Server) careersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.Careers())
	}
}

func (s *Server) jobMarketHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		careers := r.URL.Query()["career"]
		if len(careers) == 0 {
			careers = catalog.CareerNames()
		}
		respondJSON(w, http.StatusOK, recommend.JobMarket(careers))
	}
}

func (s *Server) createSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			// Owner identifies the client; a session is reused while the
			// owner's profile is unchanged.
			Owner   string          `json:"owner"`
			Profile catalog.Profile `json:"profile"`
		}
		if err := decodeJSON(w, r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		if req.Owner == "" {
			req.Owner = uuid.NewString()
		}
		var view sessionView
		created, err := s.deps.Sessions.OpenWith(req.Owner, req.Profile, func(sess *session.Session) error {
			view = newSessionView(sess, localeFrom(r))
			return nil
		})
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		respondJSON(w, status, view)
	}
}

func (s *Server) getSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var view sessionView
		_, err := s.deps.Sessions.Update(id, func(sess *session.Session) error {
			view = newSessionView(sess, localeFrom(r))
			return nil
		})
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

func (s *Server) answersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var req struct {
			Answers map[string][]string `json:"answers"`
		}
		if err := decodeJSON(w, r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		var view sessionView
		_, err := s.deps.Sessions.Update(id, func(sess *session.Session) error {
			if err := sess.RecordAll(req.Answers); err != nil {
				return err
			}
			view = newSessionView(sess, localeFrom(r))
			return nil
		})
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

func (s *Server) advanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var view sessionView
		_, err := s.deps.Sessions.Update(id, func(sess *session.Session) error {
			if _, err := sess.Advance(); err != nil {
				return err
			}
			view = newSessionView(sess, localeFrom(r))
			return nil
		})
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

func (s *Server) recommendHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			recommend.Request
			// SessionID takes profile and scores from a completed quiz.
			SessionID string `json:"session_id"`
			// CGPA holds degree scores on a 10-point scale.
			CGPA map[qb.Category]float64 `json:"cgpa"`
		}
		if err := decodeJSON(w, r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		if s.deps.Composer == nil {
			s.respondError(w, r, fmt.Errorf("recommendations: %w", errUnconfigured))
			return
		}

		in := req.Request
		if req.SessionID != "" {
			_, err := s.deps.Sessions.Update(req.SessionID, func(sess *session.Session) error {
				if !sess.Completed() {
					return errSessionActive
				}
				in.Profile = sess.Profile
				in.Scores = sess.Scores
				return nil
			})
			if err != nil {
				s.respondError(w, r, err)
				return
			}
		}
		if len(req.CGPA) > 0 {
			merged := make(scoring.Vector, len(in.Scores)+len(req.CGPA))
			for c, v := range in.Scores {
				merged[c] = v
			}
			for c, v := range req.CGPA {
				merged[c] = scoring.FromCGPA(v)
			}
			in.Scores = merged
		}
		in.Locale = locale.Parse(string(in.Locale))

		rec, err := s.deps.Composer.Compose(r.Context(), in)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, recommendationView{Recommendation: rec, Narrative: rec.Narrative(in.Locale)})
	}
}

func (s *Server) domainsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p domains.Profile
		if err := decodeJSON(w, r, &p); err != nil {
			s.respondError(w, r, err)
			return
		}
		if s.deps.Domains == nil {
			s.respondError(w, r, fmt.Errorf("domains: %w", errUnconfigured))
			return
		}
		res, err := s.deps.Domains.Recommend(r.Context(), p)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

func (s *Server) advisorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question string        `json:"question"`
			Locale   locale.Locale `json:"locale"`
		}
		if err := decodeJSON(w, r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		l := locale.Parse(string(req.Locale))
		if s.deps.Advisor == nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"answer": locale.T(l, locale.KeyAdvisorError),
				"error":  errUnconfigured.Error(),
			})
			return
		}
		answer, err := s.deps.Advisor.Ask(r.Context(), req.Question, l)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				status = http.StatusServiceUnavailable
			}
			body := map[string]string{"error": err.Error()}
			if answer != "" {
				body["answer"] = answer
			}
			respondJSON(w, status, body)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}
