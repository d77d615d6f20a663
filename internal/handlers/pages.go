package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/HammerMeetNail/plantcare/internal/assets"
	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/middleware"
	"github.com/HammerMeetNail/plantcare/internal/models"
	"github.com/HammerMeetNail/plantcare/internal/services"
)

type PageHandler struct {
	templates *template.Template
	advisor   services.AdvisorServiceInterface
	assets    *assets.Manifest
	logger    *logging.Logger
}

func NewPageHandler(templatesDir string, advisor services.AdvisorServiceInterface, manifest *assets.Manifest, logger *logging.Logger) (*PageHandler, error) {
	templates, err := template.ParseGlob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Default
	}

	return &PageHandler{
		templates: templates,
		advisor:   advisor,
		assets:    manifest,
		logger:    logger,
	}, nil
}

// PageData is shared by both form pages. Selected keeps the submitted values
// so a rejected form is re-rendered as the user left it.
type PageData struct {
	Title           string
	CSS             string
	CSRFToken       string
	Action          string
	Fields          []models.Field
	Selected        map[string]string
	Alert           string
	FieldErrors     map[string]string
	Recommendations []string
	CarePlan        *models.CarePlan
}

func (h *PageHandler) newPage(r *http.Request, title, action string, fields []models.Field) PageData {
	data := PageData{
		Title:     title,
		CSRFToken: middleware.CSRFToken(r.Context()),
		Action:    action,
		Fields:    fields,
		Selected:  map[string]string{},
	}
	if h.assets != nil {
		data.CSS = h.assets.GetCSS()
	}
	return data
}

// Nourishment renders the species/soil/light/health form.
func (h *PageHandler) Nourishment(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "Plant Nourishment AI", "/nourishment", h.advisor.Options().Nourishment)
	h.render(w, r, http.StatusOK, "nourishment.html", data)
}

func (h *PageHandler) SubmitNourishment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badForm(w, r)
		return
	}

	data := h.newPage(r, "Plant Nourishment AI", "/nourishment", h.advisor.Options().Nourishment)
	in := models.NourishmentInput{
		Species:         models.Species(r.PostFormValue("species")),
		SoilType:        models.SoilType(r.PostFormValue("soilType")),
		LightConditions: models.LightLevel(r.PostFormValue("lightConditions")),
		HealthStatus:    models.HealthStatus(r.PostFormValue("healthStatus")),
	}
	keepSelections(data.Selected, r, data.Fields)

	result, err := h.advisor.Nourish(r.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			data.Alert = msgFillAllFields
			h.render(w, r, http.StatusBadRequest, "nourishment.html", data)
			return
		}
		h.InternalError(w, r)
		return
	}

	data.Recommendations = result.Recommendations
	h.render(w, r, http.StatusOK, "nourishment.html", data)
}

// CarePlan renders the plant type/location/soil/light form.
func (h *PageHandler) CarePlan(w http.ResponseWriter, r *http.Request) {
	data := h.newPage(r, "Plant Care Planner", "/care-plan", h.advisor.Options().CarePlan)
	h.render(w, r, http.StatusOK, "care_plan.html", data)
}

func (h *PageHandler) SubmitCarePlan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.badForm(w, r)
		return
	}

	data := h.newPage(r, "Plant Care Planner", "/care-plan", h.advisor.Options().CarePlan)
	in := models.CareInput{
		PlantType:       models.PlantType(r.PostFormValue("plantType")),
		Location:        models.Location(r.PostFormValue("location")),
		SoilType:        models.GardenSoil(r.PostFormValue("soilType")),
		LightConditions: models.LightLevel(r.PostFormValue("lightConditions")),
	}
	keepSelections(data.Selected, r, data.Fields)

	plan, err := h.advisor.PlanCare(r.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			data.Alert = msgCorrectFields
			data.FieldErrors = fieldErrors(err)
			h.render(w, r, http.StatusBadRequest, "care_plan.html", data)
			return
		}
		h.InternalError(w, r)
		return
	}

	data.CarePlan = plan
	h.render(w, r, http.StatusOK, "care_plan.html", data)
}

// NotFound renders the 404 error page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.ExecuteTemplate(w, "404.html", h.newPage(r, "Page not found", "", nil)); err != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}

// InternalError renders the 500 error page.
func (h *PageHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if err := h.templates.ExecuteTemplate(w, "500.html", h.newPage(r, "Something went wrong", "", nil)); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *PageHandler) badForm(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Invalid form submission", http.StatusBadRequest)
}

// render executes into a buffer first so a template error never leaves a
// half-written page.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data PageData) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		logging.FromContext(r.Context(), h.logger).Error("Template error", map[string]interface{}{
			"template": name,
			"error":    err.Error(),
		})
		h.InternalError(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func keepSelections(selected map[string]string, r *http.Request, fields []models.Field) {
	for _, f := range fields {
		if v := r.PostFormValue(f.Name); v != "" {
			selected[f.Name] = v
		}
	}
}
