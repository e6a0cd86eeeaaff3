package main

type mode int

const (
	modeView mode = iota
	modeCommand
)

type uiState struct {
	mode         mode
	command      CommandInput
	noticeMsg    string
	noticeType   noticeKind
	noticeSeq    int
	xOffset      int
	visibleStart int
	visibleEnd   int
}
