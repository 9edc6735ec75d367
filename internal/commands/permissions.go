package commands

const (
	PermUse    = "warp.use"
	PermSet    = "warp.set"
	PermRemove = "warp.remove"
	PermList   = "warp.list"
)
