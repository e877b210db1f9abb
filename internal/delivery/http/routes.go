package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the full route table. Everything except register and
// login sits behind the session middleware.
func RegisterRoutes(e *echo.Echo, h *Handler, requireUser echo.MiddlewareFunc) {
	e.GET("/register", h.RegisterForm)
	e.POST("/register", h.Register)
	e.GET("/login", h.LoginForm)
	e.POST("/login", h.Login)

	authed := e.Group("", requireUser)
	authed.GET("/", h.Index)
	authed.GET("/logout", h.Logout)
	authed.POST("/post", h.CreatePost)
	authed.POST("/profile/zip", h.UpdateZipCode)
	authed.GET("/like/:post_id", h.LikePost)
	authed.POST("/comment/:post_id", h.AddComment)
	authed.GET("/civic_quiz", h.QuizForm)
	authed.POST("/civic_quiz", h.SubmitQuiz)
	authed.GET("/representatives", h.Representatives)
	authed.GET("/contact_rep/:rep_name", h.ContactRepForm)
	authed.POST("/contact_rep/:rep_name", h.ContactRep)
}
