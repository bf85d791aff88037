package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	loansRepo "github.com/openshelf/openshelf/internal/database/loans"
	"github.com/openshelf/openshelf/internal/members"
)

// MembersController exposes member registry operations.
type MembersController struct {
	service *members.Service
	ledger  *loansRepo.Repository
}

func NewMembersController(service *members.Service, ledger *loansRepo.Repository) *MembersController {
	return &MembersController{
		service: service,
		ledger:  ledger,
	}
}

type registerMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

func (controller *MembersController) Register(c *gin.Context) {
	var req registerMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	member, err := controller.service.Register(req.Name, req.Email, req.PIN)
	switch {
	case errors.Is(err, members.ErrNameRequired),
		errors.Is(err, members.ErrEmailRequired),
		errors.Is(err, members.ErrPINTooShort),
		errors.Is(err, members.ErrPINTooLong):
		respondBadRequest(c, err.Error())
	case err != nil:
		respondInternalError(c, err, "register member")
	default:
		respondCreated(c, member)
	}
}

func (controller *MembersController) Suspend(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Suspend(id); err != nil {
		respondNotFound(c, "member")
		return
	}
	respondSuccess(c, "member suspended")
}

func (controller *MembersController) Reactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Reactivate(id); err != nil {
		respondNotFound(c, "member")
		return
	}
	respondSuccess(c, "member reactivated")
}

func (controller *MembersController) GetLoans(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := controller.ledger.ListByMember(id, 50)
	if err != nil {
		respondInternalError(c, err, "list member loans")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"loans": events, "count": len(events)})
}
