package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookstore-inventory/internal/domain/book"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookService book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// Create 上架图书
// @Summary      上架图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse} "上架成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要ADMIN角色"
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	b, err := h.bookService.Create(c.Request.Context(), req.Title, req.Author, *req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookResponse(b))
}

// List 查询全部图书
// @Summary      图书列表
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookListResponse(books))
}

// Get 查询单本图书
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// Update 部分更新图书
// @Summary      更新图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要ADMIN角色"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	b, err := h.bookService.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookResponse(b))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要ADMIN角色"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
