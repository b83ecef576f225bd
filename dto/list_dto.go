package dto

type CreateListInput struct {
	Title string `json:"title" binding:"required"`
}

type UpdateListInput struct {
	Title string `json:"title" binding:"required"`
}

// CreateItemInput completeのbinding:"required"はbool値のfalseも「未指定」として
// 400にする。既存APIのfalsyチェックと互換の挙動で、作成時はcomplete:trueを
// 送る必要がある（意図的に残している仕様）
type CreateItemInput struct {
	ListID   uint   `json:"listId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Complete bool   `json:"complete" binding:"required"`
}

// UpdateItemInput completeの扱いはCreateItemInputと同じ
type UpdateItemInput struct {
	Title    string `json:"title" binding:"required"`
	Complete bool   `json:"complete" binding:"required"`
}

type ItemResponse struct {
	ID       uint   `json:"id"`
	ListID   uint   `json:"listId"`
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
}

type ListResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type ListDetailResponse struct {
	ID    uint           `json:"id"`
	Title string         `json:"title"`
	Items []ItemResponse `json:"items"`
}
