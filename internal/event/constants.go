package event

const (
	// DirectorySignature помечает событие, относящееся к директории, а не к содержимому файла
	DirectorySignature = "-"

	// SignatureLength - длина отпечатка содержимого файла
	SignatureLength = 8

	PathSeparator = "/"
)

const (
	FileTypeFile = "file"
	FileTypeDir  = "dir"
)
