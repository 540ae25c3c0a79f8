package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"academia/internal/adapters/http/middleware"
	"academia/internal/application/listutil"
	"academia/internal/application/orchestrators"
	"academia/internal/application/projections"
	accountDomain "academia/internal/domain/account"
	categoryDomain "academia/internal/domain/category"
	"academia/internal/domain/export"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// aboutMarkdown is the landing page copy, rendered through goldmark.
const aboutMarkdown = `## Academia de Fútbol Orizaba

Formamos jugadores desde los primeros pasos hasta la categoría juvenil.
Entrenamos en **Río Blanco** y **Jalapilla**, con horarios por categoría
según el año de nacimiento.

Inscríbete con el formulario de abajo y nos pondremos en contacto contigo.`

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// jsonError writes the error string verbatim so forms can show it as-is.
func jsonError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	email := ""
	if ok {
		role = sess.Role
		email = sess.Email
	}

	funcMap := template.FuncMap{
		"currentRole":  func() string { return role },
		"currentEmail": func() string { return email },
		"isLoggedIn":   func() bool { return role != "" },
		"isAdmin":      func() bool { return role == accountDomain.RoleAdmin },
		"csrfToken":    func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// requireAdmin checks the session for admin role and returns the session.
// Writes the error response itself; callers just return on !ok.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "no session")
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if sess.Role != accountDomain.RoleAdmin {
		slog.Warn("auth_denied", "path", r.URL.Path, "account_id", sess.AccountID, "role", sess.Role, "required", "admin")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return sess, true
}

// requireStaff allows staff and admin sessions.
func requireStaff(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return middleware.Session{}, false
	}
	if sess.Role != accountDomain.RoleAdmin && sess.Role != accountDomain.RoleStaff {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return sess, true
}

// --- Public site ---

func handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	board, err := projections.QueryGetTrainingBoard(ctx, projections.GetTrainingBoardQuery{
		PreferredVenues: projections.DefaultPreferredVenues,
	}, projections.GetTrainingBoardDeps{
		VenueStore:    stores.VenueStore,
		CategoryStore: stores.CategoryStore,
		ScheduleStore: stores.ScheduleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	venues, err := stores.VenueStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	cats, err := stores.CategoryStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	categoryDomain.SortBySortOrder(cats)

	renderTemplate(w, r, "landing.html", map[string]any{
		"About":      aboutMarkdown,
		"Board":      board.Categories,
		"Venues":     venues,
		"Categories": cats,
		"CSRFToken":  csrf.Token(r),
		"Registered": r.URL.Query().Get("registered") == "1",
		"Error":      r.URL.Query().Get("error"),
	})
}

func handleTrainingBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetTrainingBoard(r.Context(), projections.GetTrainingBoardQuery{
		PreferredVenues: projections.DefaultPreferredVenues,
	}, projections.GetTrainingBoardDeps{
		VenueStore:    stores.VenueStore,
		CategoryStore: stores.CategoryStore,
		ScheduleStore: stores.ScheduleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func handleVenues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		// Public: the registration form needs the venue list
		venues, err := stores.VenueStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if venues == nil {
			writeJSON(w, http.StatusOK, []any{})
			return
		}
		writeJSON(w, http.StatusOK, venues)
		return
	}

	if r.Method == "POST" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			Name  string `json:"name"`
			Place string `json:"place"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		v, err := orchestrators.ExecuteCreateVenue(ctx, orchestrators.CreateVenueInput{
			Name:  input.Name,
			Place: input.Place,
		}, orchestrators.CreateVenueDeps{VenueStore: stores.VenueStore})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusCreated, v)
		return
	}

	if r.Method == "PUT" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Place string `json:"place"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		v, err := orchestrators.ExecuteEditVenue(ctx, orchestrators.EditVenueInput{
			VenueID: input.ID,
			Name:    input.Name,
			Place:   input.Place,
		}, orchestrators.CreateVenueDeps{VenueStore: stores.VenueStore})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		err := orchestrators.ExecuteDeleteVenue(ctx, id, orchestrators.CreateVenueDeps{VenueStore: stores.VenueStore})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func handleCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		// Public: the registration form matches the birth year client-side
		cats, err := stores.CategoryStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		categoryDomain.SortBySortOrder(cats)
		if cats == nil {
			writeJSON(w, http.StatusOK, []any{})
			return
		}
		writeJSON(w, http.StatusOK, cats)
		return
	}

	if r.Method == "POST" || r.Method == "PUT" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			YearFrom  int    `json:"year_from"`
			YearTo    int    `json:"year_to"`
			SortOrder *int   `json:"sort_order"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		c, err := orchestrators.ExecuteSaveCategory(ctx, orchestrators.SaveCategoryInput{
			CategoryID: input.ID,
			Name:       input.Name,
			YearFrom:   input.YearFrom,
			YearTo:     input.YearTo,
			SortOrder:  input.SortOrder,
		}, orchestrators.SaveCategoryDeps{CategoryStore: stores.CategoryStore})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		status := http.StatusOK
		if input.ID == "" {
			status = http.StatusCreated
		}
		writeJSON(w, status, c)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		err := orchestrators.ExecuteDeleteCategory(ctx, id, orchestrators.SaveCategoryDeps{CategoryStore: stores.CategoryStore})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func handleSchedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		venueID := r.URL.Query().Get("venue_id")
		categoryID := r.URL.Query().Get("category_id")
		var (
			schedules any
			err       error
		)
		switch {
		case venueID != "":
			schedules, err = stores.ScheduleStore.ListByVenueID(ctx, venueID)
		case categoryID != "":
			schedules, err = stores.ScheduleStore.ListByCategoryID(ctx, categoryID)
		default:
			schedules, err = stores.ScheduleStore.List(ctx)
		}
		if err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, schedules)
		return
	}

	if r.Method == "POST" || r.Method == "PUT" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			ID         string `json:"id"`
			CategoryID string `json:"category_id"`
			VenueID    string `json:"venue_id"`
			Weekday    int    `json:"weekday"`
			StartTime  string `json:"start_time"`
			EndTime    string `json:"end_time"`
			IsOptional bool   `json:"is_optional"`
			Note       string `json:"note"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		s, err := orchestrators.ExecuteSaveSchedule(ctx, orchestrators.SaveScheduleInput{
			ScheduleID: input.ID,
			CategoryID: input.CategoryID,
			VenueID:    input.VenueID,
			Weekday:    input.Weekday,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			IsOptional: input.IsOptional,
			Note:       input.Note,
		}, orchestrators.SaveScheduleDeps{
			ScheduleStore: stores.ScheduleStore,
			VenueStore:    stores.VenueStore,
			CategoryStore: stores.CategoryStore,
		})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		status := http.StatusOK
		if input.ID == "" {
			status = http.StatusCreated
		}
		writeJSON(w, status, s)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		err := orchestrators.ExecuteDeleteSchedule(ctx, id, orchestrators.SaveScheduleDeps{
			ScheduleStore: stores.ScheduleStore,
			VenueStore:    stores.VenueStore,
			CategoryStore: stores.CategoryStore,
		})
		if err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func handlePlayerRegistrations(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	input := orchestrators.RegisterPlayerInput{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.FullName = r.FormValue("full_name")
		input.BirthDate = r.FormValue("birth_date")
		input.Phone = r.FormValue("phone")
		input.VenueID = r.FormValue("venue_id")
		input.CategoryID = r.FormValue("category_id")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	deps := orchestrators.RegisterPlayerDeps{
		RegistrationStore: stores.RegistrationStore,
		VenueStore:        stores.VenueStore,
		CategoryStore:     stores.CategoryStore,
		EmailSender:       emailSender,
		NotifyTo:          notifyAddresses,
		NotifyFrom:        emailFromAddress,
	}
	id, err := orchestrators.ExecuteRegisterPlayer(ctx, input, deps)
	if err != nil {
		// The form shows orchestrator errors verbatim
		if isHTML {
			http.Redirect(w, r, "/?error="+template.URLQueryEscaper(err.Error()), http.StatusSeeOther)
			return
		}
		jsonError(w, http.StatusBadRequest, err)
		return
	}

	if isHTML {
		http.Redirect(w, r, "/?registered=1", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// --- Auth ---

func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// If already logged in, redirect to dashboard
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}
		deps := orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email, result.Role)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("academia_session"); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// --- Staff area ---

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireStaff(w, r); !ok {
		return
	}

	lp := listutil.ParseListParams(r.URL.Query(), []string{"nombre", "edad", "fecha"}, []string{"sede", "categoria"})
	query := projections.GetRegistrationListQuery{
		Search:   lp.Search,
		Venue:    lp.Filters["sede"],
		Category: lp.Filters["categoria"],
		Now:      timeNow(),
	}
	deps := projections.GetRegistrationListDeps{
		RegistrationStore: stores.RegistrationStore,
		VenueStore:        stores.VenueStore,
		CategoryStore:     stores.CategoryStore,
	}

	result, err := projections.QueryGetRegistrationList(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	sortRegistrationRows(result.Rows, lp.Sort, lp.Dir)
	pageInfo := listutil.NewPageInfo(lp.Page, lp.PerPage, len(result.Rows))
	pageRows := result.Rows[pageInfo.Offset():pageInfo.EndRow()]

	if isHTMLRequest(r) {
		renderTemplate(w, r, "dashboard.html", map[string]any{
			"Rows":            pageRows,
			"Total":           result.Total,
			"Last30Days":      result.Last30Days,
			"VenueCount":      result.VenueCount,
			"CategoryCount":   result.CategoryCount,
			"VenueOptions":    result.VenueOptions,
			"CategoryOptions": result.CategoryOptions,
			"Search":          lp.Search,
			"Venue":           lp.Filters["sede"],
			"Category":        lp.Filters["categoria"],
			"Sort":            lp.Sort,
			"Dir":             lp.Dir,
			"PageInfo":        pageInfo,
			"PerPageOptions":  listutil.PerPageOptions,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"Rows":            pageRows,
		"Total":           result.Total,
		"Last30Days":      result.Last30Days,
		"VenueCount":      result.VenueCount,
		"CategoryCount":   result.CategoryCount,
		"VenueOptions":    result.VenueOptions,
		"CategoryOptions": result.CategoryOptions,
		"PageInfo":        pageInfo,
	})
}

// sortRegistrationRows reorders dashboard rows by the requested column. Rows
// arrive newest first from the projection; an empty column keeps that order.
func sortRegistrationRows(rows []projections.RegistrationRow, column, dir string) {
	if column == "" {
		return
	}
	desc := dir == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if desc {
			a, b = b, a
		}
		switch column {
		case "nombre":
			return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
		case "edad":
			return a.Age < b.Age
		case "fecha":
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return false
	})
}

func handleRegistrationsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireStaff(w, r); !ok {
		return
	}

	fp := listutil.ParseFilterParams(r.URL.Query(), []string{"sede", "categoria"})
	query := projections.GetRegistrationListQuery{
		Search:   fp.Search,
		Venue:    fp.Filters["sede"],
		Category: fp.Filters["categoria"],
		Now:      timeNow(),
	}
	deps := projections.GetRegistrationListDeps{
		RegistrationStore: stores.RegistrationStore,
		VenueStore:        stores.VenueStore,
		CategoryStore:     stores.CategoryStore,
	}

	result, err := projections.QueryGetRegistrationList(r.Context(), query, deps)
	if err != nil {
		internalError(w, err)
		return
	}

	csvBytes := export.RegistrationsCSV(projections.ExportRows(result.Rows))
	filename := export.FileName(timeNow())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(csvBytes)
}

// --- Admin pages ---

func handleAdminVenuesPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	venues, err := stores.VenueStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin_venues.html", map[string]any{
		"Venues":    venues,
		"CSRFToken": csrf.Token(r),
	})
}

func handleAdminSchedulesPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	ctx := r.Context()
	venues, err := stores.VenueStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	cats, err := stores.CategoryStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	categoryDomain.SortBySortOrder(cats)
	renderTemplate(w, r, "admin_schedules.html", map[string]any{
		"Venues":     venues,
		"Categories": cats,
		"CSRFToken":  csrf.Token(r),
	})
}

func handleAdminCategoriesPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	cats, err := stores.CategoryStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	categoryDomain.SortBySortOrder(cats)
	renderTemplate(w, r, "admin_categories.html", map[string]any{
		"Categories": cats,
		"CSRFToken":  csrf.Token(r),
	})
}

func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if perfCollector == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	snap := perfCollector.Snapshot(timeNow().Add(-15*time.Minute), 10)
	writeJSON(w, http.StatusOK, snap)
}
