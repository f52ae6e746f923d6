package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the role-scoped placeholder routes. Course,
// enrollment and profile data live in collaborating services that are not
// part of this API; these endpoints only confirm the caller passed the gate.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// text returns a handler that replies 200 with a fixed plain-text body.
func text(body string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := ctxIdentity(c); err != nil {
			return err
		}
		return c.String(http.StatusOK, body)
	}
}

// AdminDashboard handles GET /api/admin/dashboard.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	return text("Welcome Admin!")(c)
}

// StudentDashboard handles GET /api/student/dashboard.
//
// @Summary      Student dashboard
// @Tags         student
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/student/dashboard [get]
func (h *DashboardHandler) StudentDashboard(c echo.Context) error {
	return text("Student Dashboard Accessed")(c)
}

// StudentCourses handles GET /api/student/courses.
// @Router       /api/student/courses [get]
func (h *DashboardHandler) StudentCourses(c echo.Context) error {
	return text("List of student courses")(c)
}

// StudentProfile handles GET /api/student/profile.
// @Router       /api/student/profile [get]
func (h *DashboardHandler) StudentProfile(c echo.Context) error {
	return text("Student profile info")(c)
}

// TeacherDashboard handles GET /api/teacher/dashboard.
//
// @Summary      Teacher dashboard
// @Tags         teacher
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/teacher/dashboard [get]
func (h *DashboardHandler) TeacherDashboard(c echo.Context) error {
	return text("Teacher Dashboard Accessed")(c)
}

// CreateCourse handles POST /api/teacher/create-course.
// @Router       /api/teacher/create-course [post]
func (h *DashboardHandler) CreateCourse(c echo.Context) error {
	return text("Course created by teacher")(c)
}

// ManageCourses handles GET /api/teacher/manage-courses.
// @Router       /api/teacher/manage-courses [get]
func (h *DashboardHandler) ManageCourses(c echo.Context) error {
	return text("Manage teacher's courses")(c)
}
