package consts

const (
	PostViewKey           = "post:view:"
	PostViewDirtyKey      = "post:view:dirty"
	PostViewProcessingKey = "post:view:dirty:processing"
)
