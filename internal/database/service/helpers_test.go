package service_test

func ptr[T any](v T) *T { return &v }

func amount(v int64) *int64 { return &v }
