package services

func sp(s string) *string { return &s }

func fp(f float64) *float64 { return &f }

func ip(i int64) *int64 { return &i }
