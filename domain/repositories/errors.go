package repositories

import "errors"

// ErrNotFound คืนจาก Get* เมื่อไม่พบแถว
var ErrNotFound = errors.New("record not found")
