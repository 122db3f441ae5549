package consts

const (
	DefaultPage = 0
)

// TimeLayout 接口返回的时间格式
const TimeLayout = "2006-01-02T15:04:05Z07:00"
