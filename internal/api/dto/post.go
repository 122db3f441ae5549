package dto

// PostBaseDTO 帖子 - 新增或修改
type PostBaseDTO struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required,max=5000"`
}

// PostDTO 帖子详情
type PostDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Views     int64  `json:"views"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PostSummaryDTO 帖子列表项
type PostSummaryDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// PostsDTO 帖子分页
type PostsDTO struct {
	Posts      []*PostSummaryDTO `json:"posts"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	LastPage   bool              `json:"last_page"`
}

// PostListDTO 列表查询参数, 缺省时由服务端决定
type PostListDTO struct {
	Page *int `form:"page"`
	Size *int `form:"size"`
}
