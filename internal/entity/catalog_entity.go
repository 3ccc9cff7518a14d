package entity

type Tag struct {
	Id   int64
	Name string
}

type TimeSignature struct {
	Id   int64
	Name string
}
