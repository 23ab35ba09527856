package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeDark theme = iota // enum:alias=0
	themeLight             // enum:alias=1
)

//go:generate go run github.com/go-pkgz/enum@latest -type storageMode -lower
type storageMode int

const (
	storageModeCookie storageMode = iota
	storageModeDB                 // enum:alias=database
)
