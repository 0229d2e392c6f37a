package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrCountTooSmall           = errors.New("employee count must be at least 1")
	ErrCountTooLarge           = errors.New("employee count must not exceed 1000")
	ErrEmptyDataset            = errors.New("no employee data to export")
	ErrDestinationNotFound     = errors.New("destination folder does not exist")
	ErrDestinationNotDirectory = errors.New("destination path is not a directory")
	ErrDestinationNotWritable  = errors.New("destination folder is not writable")
	ErrExportFailed            = errors.New("export failed")
)
