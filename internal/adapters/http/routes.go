package web

import "net/http"

// registerRoutes wires all application routes onto the mux.
// Auth is enforced per-handler: public routes serve the academy site,
// /dashboard and the export need a staff session, the admin CRUD APIs
// check for the admin role inside the method branches.
func registerRoutes(mux *http.ServeMux) {
	// Public site
	mux.HandleFunc("/", handleLanding)
	mux.HandleFunc("/api/training-board", handleTrainingBoard)
	mux.HandleFunc("/api/venues", handleVenues)
	mux.HandleFunc("/api/categories", handleCategories)
	mux.HandleFunc("/api/schedules", handleSchedules)
	mux.HandleFunc("/api/player-registrations", handlePlayerRegistrations)

	// Auth
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Staff area
	mux.HandleFunc("/dashboard", handleDashboard)
	mux.HandleFunc("/api/registrations/export", handleRegistrationsExport)

	// Admin pages
	mux.HandleFunc("/admin/venues", handleAdminVenuesPage)
	mux.HandleFunc("/admin/schedules", handleAdminSchedulesPage)
	mux.HandleFunc("/admin/categories", handleAdminCategoriesPage)
	mux.HandleFunc("/admin/perf", handlePerfSnapshot)
}
