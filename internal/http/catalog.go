package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/catalog"
	loansRepo "github.com/openshelf/openshelf/internal/database/loans"
	"github.com/openshelf/openshelf/internal/entities"
)

// CatalogController exposes the circulation desk operations.
type CatalogController struct {
	service *catalog.Service
	ledger  *loansRepo.Repository
}

func NewCatalogController(service *catalog.Service, ledger *loansRepo.Repository) *CatalogController {
	return &CatalogController{
		service: service,
		ledger:  ledger,
	}
}

type addBookRequest struct {
	Title  string `json:"title"`
	Copies int    `json:"copies"`
}

func (controller *CatalogController) AddBook(c *gin.Context) {
	var req addBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	err := controller.service.AddBook(req.Title, req.Copies)
	switch {
	case errors.Is(err, catalog.ErrTitleRequired), errors.Is(err, catalog.ErrInvalidCopyCount):
		respondBadRequest(c, err.Error())
	case err != nil:
		respondInternalError(c, err, "add book")
	default:
		respondCreated(c, gin.H{"title": req.Title, "copies_added": req.Copies})
	}
}

func (controller *CatalogController) GetAvailableBooks(c *gin.Context) {
	books, err := controller.service.GetAvailableBooks()
	if err != nil {
		respondInternalError(c, err, "list available books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

type loanRequest struct {
	MemberID uint   `json:"member_id"`
	Title    string `json:"title"`
}

func (controller *CatalogController) BorrowBook(c *gin.Context) {
	var req loanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	borrowed, err := controller.service.BorrowBook(req.MemberID, req.Title)
	if errors.Is(err, catalog.ErrMemberNotEligible) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error(), Code: "member_not_eligible"})
		return
	}
	if err != nil {
		respondInternalError(c, err, "borrow book")
		return
	}
	if !borrowed {
		c.JSON(http.StatusConflict, gin.H{"borrowed": false, "title": req.Title})
		return
	}

	controller.recordLoan(req.MemberID, req.Title, entities.LoanActionBorrow)
	respondCreated(c, gin.H{"borrowed": true, "title": req.Title, "member_id": req.MemberID})
}

func (controller *CatalogController) ReturnBook(c *gin.Context) {
	var req loanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	returned, err := controller.service.ReturnBook(req.MemberID, req.Title)
	if err != nil {
		respondInternalError(c, err, "return book")
		return
	}
	if !returned {
		c.JSON(http.StatusNotFound, gin.H{"returned": false, "title": req.Title})
		return
	}

	controller.recordLoan(req.MemberID, req.Title, entities.LoanActionReturn)
	c.JSON(http.StatusOK, gin.H{"returned": true, "title": req.Title, "member_id": req.MemberID})
}

// recordLoan appends to the circulation ledger. Ledger rows are bookkeeping;
// a failed write must not fail the loan that already happened.
func (controller *CatalogController) recordLoan(memberID uint, title string, action entities.LoanAction) {
	if controller.ledger == nil {
		return
	}
	event := &entities.LoanEvent{MemberID: memberID, BookTitle: title, Action: action}
	if err := controller.ledger.Record(event); err != nil {
		log.Printf("Failed to record %s of %q for member %d: %v", action, title, memberID, err)
	}
}
