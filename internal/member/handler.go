package member

import (
	"context"
	"net/http"

	sharedContext "github.com/uknowme/member-server/internal/shared/context"
	"github.com/uknowme/member-server/internal/shared/handler"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) Join(c *gin.Context) {
	var request JoinRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.Join(c.Request.Context(), &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{})
}

func (h *MemberHandler) Update(c *gin.Context) {
	var request UpdateRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.memberService.Update(c.Request.Context(), sharedContext.CallerID(c), &request); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.Delete(c.Request.Context(), sharedContext.CallerID(c)); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func (h *MemberHandler) GetMemberInfo(c *gin.Context) {
	response, err := h.memberService.GetMemberInfo(c.Request.Context(), sharedContext.CallerID(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) ValidatePassword(c *gin.Context) {
	var request ValidatePasswordRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	valid, err := h.memberService.ValidatePassword(c.Request.Context(), sharedContext.CallerID(c), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidatePasswordResponse{Valid: valid})
}

func (h *MemberHandler) FindID(c *gin.Context) {
	var request FindIDRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.FindID(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) GetMemberList(c *gin.Context) {
	response, err := h.memberService.GetMemberList(c.Request.Context(), sharedContext.CallerID(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) GetMemberBySeq(c *gin.Context) {
	var uri seqURI
	if !handler.BindURI(c, &uri) {
		return
	}

	response, err := h.memberService.GetMemberBySeq(c.Request.Context(), sharedContext.CallerID(c), uri.Seq)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) ExistsByID(c *gin.Context) {
	h.respondExists(c, h.memberService.ExistsByID, c.Param("id"))
}

func (h *MemberHandler) ExistsByNickname(c *gin.Context) {
	h.respondExists(c, h.memberService.ExistsByNickname, c.Param("nickname"))
}

func (h *MemberHandler) ExistsByTel(c *gin.Context) {
	h.respondExists(c, h.memberService.ExistsByTel, c.Param("tel"))
}

func (h *MemberHandler) respondExists(c *gin.Context, exists func(context.Context, string) (bool, error), value string) {
	found, err := exists(c.Request.Context(), value)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExistsResponse{Exists: found})
}
