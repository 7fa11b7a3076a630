package http

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"

	applog "finegems/internal/log"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports ready only while the store can be loaded.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.ledger.Ready(r.Context()); err != nil {
		s.log(r).WarnContext(r.Context(), "Readiness check failed", applog.FieldError, err.Error())
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	agg, err := s.ledger.Dashboard(r.Context())
	if err != nil {
		s.serverError(w, r, "Dashboard load failed", err)
		return
	}

	var buf bytes.Buffer
	data := buildDashboardView(agg, s.ledger.Today())
	if err := s.templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		s.log(r).WithComponent(applog.ComponentTemplate).ErrorContext(r.Context(), "Index template execution failed",
			applog.FieldError, err.Error(),
			applog.FieldOperation, applog.OpRender)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	in, err := ParseTransactionForm(w, r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if _, err := s.ledger.AddTransaction(r.Context(), in); err != nil {
		s.serverError(w, r, "Add transaction failed", err)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := s.ledger.DeleteTransaction(r.Context(), id); err != nil {
		s.serverError(w, r, "Delete transaction failed", err)
		return
	}
	redirectHome(w, r)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	in, err := ParseBudgetForm(w, r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if err := s.ledger.SetBudget(r.Context(), in.Category, in.Amount); err != nil {
		s.serverError(w, r, "Set budget failed", err)
		return
	}
	redirectHome(w, r)
}

// redirectHome sends the browser back to the dashboard after a mutation.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.log(r).WarnContext(r.Context(), "Malformed form submission",
		applog.FieldError, err.Error(),
		applog.FieldPath, r.URL.Path)
	http.Error(w, "bad request", http.StatusBadRequest)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.log(r).ErrorContext(r.Context(), msg,
		applog.FieldError, err.Error(),
		applog.FieldPath, r.URL.Path)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// log returns the request-scoped logger when the trace middleware set one.
func (s *Server) log(r *http.Request) *applog.Logger {
	if l, ok := r.Context().Value(applog.LoggerContextKey).(*applog.Logger); ok {
		return l.WithComponent(applog.ComponentHTTP)
	}
	return s.logger
}
