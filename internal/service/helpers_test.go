package service_test

import "gorm.io/gorm"

var errRecordNotFound = gorm.ErrRecordNotFound
