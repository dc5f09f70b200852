package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/session"
	"github.com/verte-zerg/tuiguess/internal/stats"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type roundView struct {
	Level    int    `json:"level"`
	Attempts int    `json:"attempts"`
	Status   string `json:"status"`
}

type outcomeView struct {
	Level   int     `json:"level"`
	Score   int     `json:"score"`
	Seconds float64 `json:"seconds"`
	Won     bool    `json:"won"`
}

type summaryView struct {
	TotalWins    int            `json:"totalWins"`
	AverageScore string         `json:"averageScore"`
	Leaderboard  []int          `json:"leaderboard"`
	AverageTime  string         `json:"averageTime"`
	FastestTime  string         `json:"fastestTime"`
	Streak       int            `json:"streak"`
	BestPerLevel map[string]int `json:"bestPerLevel"`
	LastTier     string         `json:"lastTier,omitempty"`
}

type sessionResponse struct {
	Player  string      `json:"player"`
	Levels  []int       `json:"levels"`
	Round   *roundView  `json:"round,omitempty"`
	Summary summaryView `json:"summary"`
}

type playResponse struct {
	roundView
	Message string `json:"message"`
}

type guessResponse struct {
	Direction string       `json:"direction"`
	Proximity string       `json:"proximity"`
	Attempts  int          `json:"attempts"`
	Status    string       `json:"status"`
	Message   string       `json:"message"`
	Outcome   *outcomeView `json:"outcome,omitempty"`
	Answer    int          `json:"answer,omitempty"`
	Summary   summaryView  `json:"summary"`
}

type giveUpResponse struct {
	Outcome outcomeView `json:"outcome"`
	Answer  int         `json:"answer"`
	Message string      `json:"message"`
	Summary summaryView `json:"summary"`
}

type hintResponse struct {
	Direction string `json:"direction"`
	Closeness string `json:"closeness"`
	Parity    string `json:"parity"`
	Message   string `json:"message"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type levelRequest struct {
	Level json.RawMessage `json:"level"`
}

type guessRequest struct {
	Guess json.RawMessage `json:"guess"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var resp sessionResponse
	_ = entryFrom(r).Do(func(sess *session.Session) error {
		resp = sessionResponse{
			Player:  sess.Player(),
			Levels:  s.levels,
			Round:   viewRound(sess.Round()),
			Summary: viewSummary(sess.Summary()),
		}
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decode(w, r, &req) {
		return
	}
	var name string
	err := entryFrom(r).Do(func(sess *session.Session) error {
		var err error
		name, err = sess.SetPlayer(req.Name)
		return err
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"player": name})
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req levelRequest
	if !decode(w, r, &req) {
		return
	}
	var resp playResponse
	err := entryFrom(r).Do(func(sess *session.Session) error {
		level, err := round.ParseLevel(rawText(req.Level))
		if err != nil {
			return err
		}
		rep, err := sess.Play(level)
		if err != nil {
			return err
		}
		resp = playResponse{roundView: *viewRound(sess.Round()), Message: rep.Message}
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if !decode(w, r, &req) {
		return
	}
	var resp guessResponse
	err := entryFrom(r).Do(func(sess *session.Session) error {
		rep, err := sess.Guess(rawText(req.Guess))
		if err != nil {
			return err
		}
		resp = guessResponse{
			Direction: rep.Guess.Direction.String(),
			Proximity: rep.Guess.Proximity.String(),
			Attempts:  rep.Guess.Attempts,
			Status:    sess.Round().Status().String(),
			Message:   rep.Message,
			Summary:   viewSummary(rep.Summary),
		}
		if rep.Finished {
			out := viewOutcome(rep.Outcome)
			resp.Outcome = &out
			resp.Answer = rep.Answer
		}
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGiveUp(w http.ResponseWriter, r *http.Request) {
	var resp giveUpResponse
	err := entryFrom(r).Do(func(sess *session.Session) error {
		rep, err := sess.GiveUp()
		if err != nil {
			return err
		}
		resp = giveUpResponse{
			Outcome: viewOutcome(rep.Outcome),
			Answer:  rep.Answer,
			Message: rep.Message,
			Summary: viewSummary(rep.Summary),
		}
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if !decode(w, r, &req) {
		return
	}
	var resp hintResponse
	err := entryFrom(r).Do(func(sess *session.Session) error {
		hint, msg, err := sess.Hint(rawText(req.Guess))
		if err != nil {
			return err
		}
		resp = hintResponse{
			Direction: hint.Direction.String(),
			Closeness: hint.Closeness.String(),
			Parity:    hint.Parity.String(),
			Message:   msg,
		}
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var sum stats.Summary
	_ = entryFrom(r).Do(func(sess *session.Session) error {
		sum = sess.Summary()
		return nil
	})
	writeJSON(w, http.StatusOK, viewSummary(sum))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var sum stats.Summary
	_ = entryFrom(r).Do(func(sess *session.Session) error {
		sum = sess.Reset()
		return nil
	})
	writeJSON(w, http.StatusOK, viewSummary(sum))
}

func viewRound(rd *round.Round) *roundView {
	if rd == nil {
		return nil
	}
	return &roundView{Level: rd.Level(), Attempts: rd.Attempts(), Status: rd.Status().String()}
}

func viewOutcome(o round.Outcome) outcomeView {
	return outcomeView{Level: o.Level, Score: o.Score, Seconds: o.ElapsedSeconds(), Won: o.Won}
}

func viewSummary(sum stats.Summary) summaryView {
	v := summaryView{
		TotalWins:    sum.TotalWins,
		AverageScore: sum.AverageScore.String(),
		Leaderboard:  append([]int{}, sum.Leaderboard...),
		AverageTime:  sum.AverageTime.String(),
		FastestTime:  sum.FastestTime.String(),
		Streak:       sum.Streak,
		BestPerLevel: make(map[string]int, len(sum.BestPerLevel)),
	}
	for level, score := range sum.BestPerLevel {
		v.BestPerLevel[strconv.Itoa(level)] = score
	}
	if sum.LastTier != stats.TierNone {
		v.LastTier = sum.LastTier.String()
	}
	return v
}

// rawText accepts a number or a string so the engine sees what the user typed.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "request body must be a JSON object")
		return false
	}
	return true
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, kind := classify(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("unexpected session error")
	}
	writeError(w, status, kind, session.MessageFor(err))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, round.ErrInvalidLevel):
		return http.StatusBadRequest, "invalid_level"
	case errors.Is(err, round.ErrInvalidGuess):
		return http.StatusBadRequest, "invalid_guess"
	case errors.Is(err, session.ErrInvalidName):
		return http.StatusBadRequest, "invalid_name"
	case errors.Is(err, round.ErrNoActiveRound):
		return http.StatusConflict, "no_active_round"
	case errors.Is(err, round.ErrInvalidState):
		return http.StatusConflict, "invalid_state"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorResponse{Error: kind, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}
