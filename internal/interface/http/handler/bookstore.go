package handler

import (
	"github.com/gin-gonic/gin"

	appstore "github.com/xiebiao/bookstore-inventory/internal/application/bookstore"
	"github.com/xiebiao/bookstore-inventory/internal/domain/bookstore"
	"github.com/xiebiao/bookstore-inventory/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// BookstoreHandler 书店HTTP处理器
type BookstoreHandler struct {
	storeService          bookstore.Service
	updateQuantityUseCase *appstore.UpdateQuantityUseCase
}

// NewBookstoreHandler 创建书店处理器
func NewBookstoreHandler(
	storeService bookstore.Service,
	updateQuantityUseCase *appstore.UpdateQuantityUseCase,
) *BookstoreHandler {
	return &BookstoreHandler{
		storeService:          storeService,
		updateQuantityUseCase: updateQuantityUseCase,
	}
}

// Create 创建书店
// @Summary      创建书店
// @Tags         书店
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookstoreRequest true "书店信息"
// @Success      201 {object} response.Response{data=dto.BookstoreResponse} "创建成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要ADMIN角色"
// @Router       /bookstores [post]
func (h *BookstoreHandler) Create(c *gin.Context) {
	var req dto.CreateBookstoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), req.Name, req.Location)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewBookstoreResponse(store))
}

// List 查询全部书店
// @Summary      书店列表
// @Description  概要视图，不含库存集合
// @Tags         书店
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookstoreResponse}
// @Router       /bookstores [get]
func (h *BookstoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookstoreListResponse(stores))
}

// Get 查询书店详情
// @Summary      书店详情
// @Description  含完整库存集合，每个条目展开其关联图书
// @Tags         书店
// @Produce      json
// @Param        id path int true "书店ID"
// @Success      200 {object} response.Response{data=dto.BookstoreDetailResponse}
// @Failure      404 {object} response.Response "书店不存在"
// @Router       /bookstores/{id} [get]
func (h *BookstoreHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	store, err := h.storeService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewBookstoreDetailResponse(store))
}

// UpdateQuantity 变更(书店,图书)库存数量
// @Summary      变更库存数量
// @Description  quantity为增量，可为负；条目不存在时以0懒创建后累加
// @Tags         书店
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId path int true "书店ID"
// @Param        bookId path int true "图书ID"
// @Param        request body dto.UpdateQuantityRequest true "数量增量"
// @Success      200 {object} response.Response{data=dto.StockEntryResponse}
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "需要STORE_MANAGER角色"
// @Failure      404 {object} response.Response "书店或图书不存在"
// @Router       /bookstores/{storeId}/quantity/{bookId} [patch]
func (h *BookstoreHandler) UpdateQuantity(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	bookID, ok := parseID(c, "bookId")
	if !ok {
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	entry, err := h.updateQuantityUseCase.Execute(c.Request.Context(), storeID, bookID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewStockEntryResponse(entry))
}
