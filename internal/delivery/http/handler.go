package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"purple-insta/internal/application/command"
	"purple-insta/internal/application/services"
	"purple-insta/internal/infrastructure/civic"
	"purple-insta/internal/util"
)

// Handler owns every route of the web surface. Failures are mapped to
// statuses here, at the boundary; services below it only return errors.
type Handler struct {
	userService  *services.UserService
	feedService  *services.FeedService
	quizService  *services.QuizService
	civicService *services.CivicService
	sessionTTL   time.Duration
}

func NewHandler(
	userService *services.UserService,
	feedService *services.FeedService,
	quizService *services.QuizService,
	civicService *services.CivicService,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		userService:  userService,
		feedService:  feedService,
		quizService:  quizService,
		civicService: civicService,
		sessionTTL:   sessionTTL,
	}
}

// Index lists posts newest-first for the authenticated user.
func (h *Handler) Index(c echo.Context) error {
	posts, err := h.feedService.ListPosts()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

func (h *Handler) RegisterForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields": []string{"username", "email", "password", "zip_code"},
	})
}

func (h *Handler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	_, err := h.userService.Register(&cmd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateHandle), errors.Is(err, services.ErrDuplicateEmail):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return err
		}
	}

	return c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) LoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields": []string{"username", "password"},
	})
}

func (h *Handler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	result, err := h.userService.Login(&cmd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrTooManyAttempts):
			return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
		default:
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) CreatePost(c echo.Context) error {
	var cmd command.CreatePostCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	cmd.UserId = CurrentUser(c).Id

	if _, err := h.feedService.CreatePost(&cmd); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) LikePost(c echo.Context) error {
	postId, err := parseId(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	if err := h.feedService.LikePost(postId); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) AddComment(c echo.Context) error {
	postId, err := parseId(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	var cmd command.AddCommentCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	cmd.UserId = CurrentUser(c).Id
	cmd.PostId = postId

	if _, err := h.feedService.AddComment(&cmd); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	return c.Redirect(http.StatusFound, "/")
}

// UpdateZipCode lets a user set the zip code the representative lookup
// needs. The original profile page only hinted at this; the write path is
// small enough to keep.
func (h *Handler) UpdateZipCode(c echo.Context) error {
	zipCode := c.FormValue("zip_code")
	if err := h.userService.UpdateZipCode(CurrentUser(c).Id, zipCode); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}

func (h *Handler) QuizForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"questions": h.quizService.Questions(),
	})
}

func (h *Handler) SubmitQuiz(c echo.Context) error {
	answers := make([]int, 0, services.QuizLength)
	for i := 1; i <= services.QuizLength; i++ {
		value := c.FormValue("answer" + strconv.Itoa(i))
		answer, err := strconv.Atoi(value)
		if err != nil {
			answer = 0
		}
		answers = append(answers, answer)
	}

	score := h.quizService.Score(answers)
	return c.JSON(http.StatusOK, echo.Map{"score": score})
}

func (h *Handler) Representatives(c echo.Context) error {
	reps, err := h.civicService.RepresentativesFor(c.Request().Context(), CurrentUser(c).Id)
	if err != nil {
		var lookupErr *civic.LookupError
		switch {
		case errors.Is(err, services.ErrNoZipCode):
			return echo.NewHTTPError(http.StatusPreconditionFailed,
				"Please update your zip code in your profile.")
		case errors.As(err, &lookupErr):
			util.Logger.Warn("representative lookup failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusBadGateway,
				"Error fetching representative information: "+lookupErr.Error())
		default:
			return err
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"representatives": reps})
}

func (h *Handler) ContactRepForm(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"rep_name": c.Param("rep_name"),
		"fields":   []string{"message"},
	})
}

func (h *Handler) ContactRep(c echo.Context) error {
	var cmd command.ContactRepCommand
	if err := c.Bind(&cmd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	cmd.RepName = c.Param("rep_name")

	result, err := h.civicService.Contact(&cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":      result.Receipt.Id,
		"message": result.Confirmation,
	})
}

func parseId(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
