package handler

import (
	"Sokdak/internal/api/dto"
	"Sokdak/internal/pkg/response"
	"Sokdak/internal/service"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := bindPostBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	postID, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "/posts/"+strconv.FormatUint(postID, 10))
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	var query dto.PostListDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, fmt.Errorf("%w: %v", service.ErrParamInvalid, err))
		return
	}

	posts, err := s.postSvc.ListPosts(c.Request.Context(), query.Page, query.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PostBaseDTO
	if err = bindPostBody(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.UpdatePost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// bindPostBody 空请求体按缺少字段处理, 交给 service 校验
func bindPostBody(c *gin.Context, req *dto.PostBaseDTO) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func parsePostID(c *gin.Context) (uint64, error) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: post_id %q", service.ErrParamInvalid, c.Param("post_id"))
	}
	return postID, nil
}
