package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the calculator form and the result page.
type Handler struct {
	client *CalcClient
	logger *log.Logger
}

func NewHandler(client *CalcClient, logger *log.Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// formData backs the index page template.
type formData struct {
	Number1 string
	Number2 string
	Error   string
}

// resultData backs the result page template.
type resultData struct {
	Number1 float64
	Number2 float64
	Result  float64
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, "index.html.tmpl", formData{})
}

// Submit handles the form post: parse the two operands, call the calculation
// service, render the result with its single-point plot.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderPage(w, http.StatusBadRequest, "index.html.tmpl", formData{
			Error: "Could not read the submitted form",
		})
		return
	}

	rawNumber1 := r.PostFormValue("number1")
	rawNumber2 := r.PostFormValue("number2")

	number1, err1 := strconv.ParseFloat(rawNumber1, 64)
	number2, err2 := strconv.ParseFloat(rawNumber2, 64)
	if err1 != nil || err2 != nil {
		h.renderPage(w, http.StatusBadRequest, "index.html.tmpl", formData{
			Number1: rawNumber1,
			Number2: rawNumber2,
			Error:   "Both fields must be numbers",
		})
		return
	}

	result, err := h.client.Calculate(r.Context(), number1, number2)
	if err != nil {
		h.logger.Printf("ERROR: %v", err)
		h.renderPage(w, http.StatusBadGateway, "error.html.tmpl", map[string]string{
			"Message": "The calculation service could not be reached. Please try again.",
		})
		return
	}

	h.renderPage(w, http.StatusOK, "result.html.tmpl", resultData{
		Number1: number1,
		Number2: number2,
		Result:  result,
	})
}

func (h *Handler) renderPage(w http.ResponseWriter, code int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Printf("Failed to render template %s: %v", name, err)
	}
}

// SetupRouter creates the Chi router for the presentation process.
func SetupRouter(client *CalcClient, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewHandler(client, logger)
	r.Get("/", h.Index)
	r.Post("/calculate", h.Submit)

	return r
}
