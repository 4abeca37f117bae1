package input

import (
	"github.com/readwiseio/readwise-cli/internal/formcore"
	"github.com/readwiseio/readwise-cli/internal/term"
)

const horizontalScrollStep = 4

func handleResults(s formcore.AppState, ev term.KeyEvent) (formcore.AppState, Signal) {
	if ev.Name == "q" || (ev.Ctrl && ev.Name == "c") {
		out := s.Clone()
		if out.QuitConfirm {
			return out, SignalExit
		}
		out.QuitConfirm = true
		return out, SignalNone
	}

	switch ev.Name {
	case "escape", "enter":
		return backFromResults(s), SignalNone
	case "y", "c":
		out := s.Clone()
		out.StatusMessage = ""
		return out, SignalCopyResult
	case "up":
		out := s.Clone()
		out.StatusMessage = ""
		out.ResultScroll = maxInt(0, out.ResultScroll-1)
		return out, SignalNone
	case "down":
		out := s.Clone()
		out.StatusMessage = ""
		out.ResultScroll++
		return out, SignalNone
	case "pageup":
		out := s.Clone()
		out.StatusMessage = ""
		out.ResultScroll = maxInt(0, out.ResultScroll-10)
		return out, SignalNone
	case "pagedown":
		out := s.Clone()
		out.StatusMessage = ""
		out.ResultScroll += 10
		return out, SignalNone
	case "left":
		out := s.Clone()
		out.StatusMessage = ""
		out.ResultScrollX = maxInt(0, out.ResultScrollX-horizontalScrollStep)
		return out, SignalNone
	case "right":
		out := s.Clone()
		out.StatusMessage = ""
		out.ResultScrollX += horizontalScrollStep
		return out, SignalNone
	}

	return s, SignalNone
}

func backFromResults(s formcore.AppState) formcore.AppState {
	out := s.Clone()
	out.ResultScroll = 0
	out.ResultScrollX = 0
	out.Result = nil
	out.ResultErr = nil
	out.StatusMessage = ""

	if len(out.Fields) > 0 && out.SelectedTool != nil {
		out.View = formcore.ViewForm
		out.Editing = false
		return out
	}

	out.View = formcore.ViewCommands
	out.SelectedTool = nil
	out.Fields = nil
	out.Values = nil
	out.FormStack = nil
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
