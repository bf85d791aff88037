package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/openshelf/internal/catalog"
	"github.com/openshelf/openshelf/internal/database"
	booksRepo "github.com/openshelf/openshelf/internal/database/books"
	loansRepo "github.com/openshelf/openshelf/internal/database/loans"
	membersRepo "github.com/openshelf/openshelf/internal/database/members"
	notificationsRepo "github.com/openshelf/openshelf/internal/database/notifications"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/members"
	"github.com/openshelf/openshelf/internal/notifications"
)

func setupCatalogTest(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ledger := loansRepo.NewRepository(db.DB)
	memberService := members.NewService(membersRepo.NewRepository(db.DB), bcrypt.MinCost)
	sink := notifications.NewService(notificationsRepo.NewRepository(db.DB), nil)
	service := catalog.NewService(booksRepo.NewRepository(db.DB), memberService, sink)

	router := NewRouter(RouterConfig{
		Catalog: NewCatalogController(service, ledger),
		Members: NewMembersController(memberService, ledger),
		Health:  NewHealthController(db, "test"),
	})
	return router, db
}

func registerTestMember(t *testing.T, router *gin.Engine) uint {
	t.Helper()
	w := httptest.NewRecorder()
	body := `{"name": "Ada", "email": "ada@example.com", "pin": "4242"}`
	req, _ := http.NewRequest("POST", "/api/members", strings.NewReader(body))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var member entities.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))
	return member.ID
}

func TestCatalogController_AddBook(t *testing.T) {
	t.Run("creates a catalog record", func(t *testing.T) {
		router, db := setupCatalogTest(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", strings.NewReader(`{"title": "1984", "copies": 3}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var saved entities.Book
		require.NoError(t, db.DB.Where("title = ?", "1984").First(&saved).Error)
		assert.Equal(t, 3, saved.Copies)
	})

	t.Run("rejects a blank title", func(t *testing.T) {
		router, _ := setupCatalogTest(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", strings.NewReader(`{"title": "  ", "copies": 3}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "title is required")
	})

	t.Run("rejects non-positive copies", func(t *testing.T) {
		router, _ := setupCatalogTest(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/books", strings.NewReader(`{"title": "1984", "copies": 0}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogController_GetAvailableBooks(t *testing.T) {
	t.Run("returns only titles with copies on the shelf", func(t *testing.T) {
		router, db := setupCatalogTest(t)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Book A", Copies: 0}).Error)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Book B", Copies: 30}).Error)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Book C", Copies: 30}).Error)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/available", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Books []entities.Book `json:"books"`
			Count int             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		require.Len(t, response.Books, 2)
		assert.Equal(t, "Book B", response.Books[0].Title)
		assert.Equal(t, "Book C", response.Books[1].Title)
	})

	t.Run("returns an empty list for an empty catalog", func(t *testing.T) {
		router, _ := setupCatalogTest(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/available", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"books": []`)
	})
}

func TestCatalogController_BorrowBook(t *testing.T) {
	t.Run("lends an available copy", func(t *testing.T) {
		router, db := setupCatalogTest(t)
		memberID := registerTestMember(t, router)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Dune", Copies: 2}).Error)

		w := httptest.NewRecorder()
		body := `{"member_id": ` + jsonID(memberID) + `, "title": "Dune"}`
		req, _ := http.NewRequest("POST", "/api/loans", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var saved entities.Book
		require.NoError(t, db.DB.Where("title = ?", "Dune").First(&saved).Error)
		assert.Equal(t, 1, saved.Copies)

		// Ledger row and outbox row were written.
		var loanCount, noticeCount int64
		db.DB.Model(&entities.LoanEvent{}).Count(&loanCount)
		db.DB.Model(&entities.Notification{}).Count(&noticeCount)
		assert.Equal(t, int64(1), loanCount)
		assert.Equal(t, int64(1), noticeCount)
	})

	t.Run("refuses a suspended member", func(t *testing.T) {
		router, db := setupCatalogTest(t)
		memberID := registerTestMember(t, router)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Dune", Copies: 2}).Error)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/members/"+jsonID(memberID)+"/suspend", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		body := `{"member_id": ` + jsonID(memberID) + `, "title": "Dune"}`
		req, _ = http.NewRequest("POST", "/api/loans", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "member_not_eligible")
	})

	t.Run("reports a conflict when no copies remain", func(t *testing.T) {
		router, db := setupCatalogTest(t)
		memberID := registerTestMember(t, router)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Dune", Copies: 0}).Error)

		w := httptest.NewRecorder()
		body := `{"member_id": ` + jsonID(memberID) + `, "title": "Dune"}`
		req, _ := http.NewRequest("POST", "/api/loans", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"borrowed":false`)
	})
}

func TestCatalogController_ReturnBook(t *testing.T) {
	t.Run("takes a copy back", func(t *testing.T) {
		router, db := setupCatalogTest(t)
		memberID := registerTestMember(t, router)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Dune", Copies: 1}).Error)

		w := httptest.NewRecorder()
		body := `{"member_id": ` + jsonID(memberID) + `, "title": "Dune"}`
		req, _ := http.NewRequest("POST", "/api/returns", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var saved entities.Book
		require.NoError(t, db.DB.Where("title = ?", "Dune").First(&saved).Error)
		assert.Equal(t, 2, saved.Copies)
	})

	t.Run("reports an unknown title", func(t *testing.T) {
		router, _ := setupCatalogTest(t)
		memberID := registerTestMember(t, router)

		w := httptest.NewRecorder()
		body := `{"member_id": ` + jsonID(memberID) + `, "title": "Nope"}`
		req, _ := http.NewRequest("POST", "/api/returns", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"returned":false`)
	})

	t.Run("accepts a return from a suspended member", func(t *testing.T) {
		router, db := setupCatalogTest(t)
		memberID := registerTestMember(t, router)
		require.NoError(t, db.DB.Create(&entities.Book{Title: "Dune", Copies: 0}).Error)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/members/"+jsonID(memberID)+"/suspend", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		body := `{"member_id": ` + jsonID(memberID) + `, "title": "Dune"}`
		req, _ = http.NewRequest("POST", "/api/returns", strings.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
