package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"purple-insta/internal/application/command"
	"purple-insta/internal/application/services"
	"purple-insta/internal/domain/entities"
	"purple-insta/internal/domain/repositories"
	"purple-insta/internal/infrastructure"
	"purple-insta/internal/infrastructure/civic"
	"purple-insta/internal/infrastructure/db"
)

func seedUser(t *testing.T, userRepo repositories.UserRepository, zipCode string) *entities.User {
	t.Helper()

	validated, err := entities.NewValidatedUser(
		entities.NewUser("frank", "frank@example.com", "hunter2", zipCode))
	require.NoError(t, err)

	user, err := userRepo.Create(validated)
	require.NoError(t, err)
	return user
}

func newCivicService(t *testing.T, zipCode, baseURL string) (*services.CivicService, *entities.User) {
	t.Helper()

	gdb := newTestDB(t)

	userRepo := db.NewUserRepository(gdb)
	user := seedUser(t, userRepo, zipCode)

	svc := services.NewCivicService(
		userRepo,
		civic.NewClient(baseURL, "test-key"),
		nil, // no cache
		infrastructure.NewMailService("", ""),
	)
	return svc, user
}

func TestRepresentativesWithoutZipNeverCallsAPI(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer server.Close()

	svc, user := newCivicService(t, "", server.URL)

	_, err := svc.RepresentativesFor(context.Background(), user.Id)
	assert.ErrorIs(t, err, services.ErrNoZipCode)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestRepresentativesSurfacesLookupError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc, user := newCivicService(t, "12061", server.URL)

	_, err := svc.RepresentativesFor(context.Background(), user.Id)
	var lookupErr *civic.LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestRepresentativesHappyPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"offices":[{"name":"Mayor","officialIndices":[0]}],"officials":[{"name":"Alice Adams","party":"Independent"}]}`))
	}))
	defer server.Close()

	svc, user := newCivicService(t, "12061", server.URL)

	reps, err := svc.RepresentativesFor(context.Background(), user.Id)
	require.NoError(t, err)
	require.Len(t, reps, 1)
	assert.Equal(t, "Alice Adams", reps[0].Name)
	assert.Equal(t, "Mayor", reps[0].Office)
}

func TestContactEchoesConfirmation(t *testing.T) {
	svc, _ := newCivicService(t, "12061", "http://unused.invalid")

	result, err := svc.Contact(&command.ContactRepCommand{
		RepName: "Alice Adams",
		Message: "please fix the potholes",
	})
	require.NoError(t, err)

	assert.Equal(t, "Message sent to Alice Adams: please fix the potholes", result.Confirmation)
	assert.NotEmpty(t, result.Receipt.Id)
}
