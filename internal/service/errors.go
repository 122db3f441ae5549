package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid = errors.New("잘못된 요청입니다.")
	ErrPostInvalid  = errors.New("제목 혹은 본문이 없습니다.")
	ErrPostNotFound = errors.New("게시글이 존재하지 않습니다.")
	UnExpectedError = errors.New("일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.")
)

// ErrorMap 业务错误到 HTTP 状态码
var ErrorMap = map[error]int{
	ErrParamInvalid: http.StatusBadRequest,
	ErrPostInvalid:  http.StatusBadRequest,
	ErrPostNotFound: http.StatusNotFound,
	UnExpectedError: http.StatusInternalServerError,
}

// Classify 返回 err 对应的状态码与业务错误, 未登记的错误视为 UnExpectedError
func Classify(err error) (int, error) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, target
		}
	}
	return http.StatusInternalServerError, UnExpectedError
}
