package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommands merekam operasi sesi yang dipicu sebuah frame.
type fakeCommands struct {
	calls       []string
	transcripts []string
	webcamOn    []bool
}

func (f *fakeCommands) Start()              { f.calls = append(f.calls, "start") }
func (f *fakeCommands) Stop()               { f.calls = append(f.calls, "stop") }
func (f *fakeCommands) Restart()            { f.calls = append(f.calls, "restart") }
func (f *fakeCommands) Save()               { f.calls = append(f.calls, "save") }
func (f *fakeCommands) Discard()            { f.calls = append(f.calls, "discard") }
func (f *fakeCommands) ReportWebcamError()  { f.calls = append(f.calls, "webcam_error") }
func (f *fakeCommands) Transcript(text string) {
	f.calls = append(f.calls, "transcript")
	f.transcripts = append(f.transcripts, text)
}
func (f *fakeCommands) SetWebcam(on bool) {
	f.calls = append(f.calls, "webcam")
	f.webcamOn = append(f.webcamOn, on)
}

func decodeFrame(t *testing.T, raw string) clientMessage {
	t.Helper()
	var msg clientMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	return msg
}

func TestDispatchClientMessage(t *testing.T) {
	fake := &fakeCommands{}
	frames := []string{
		`{"type":"start"}`,
		`{"type":"transcript","result":{"transcript":"saya pernah membangun API","is_final":true}}`,
		`{"type":"stop"}`,
		`{"type":"save"}`,
	}
	for _, raw := range frames {
		assert.False(t, dispatchClientMessage(fake, decodeFrame(t, raw)))
	}
	assert.Equal(t, []string{"start", "transcript", "stop", "save"}, fake.calls)
	assert.Equal(t, []string{"saya pernah membangun API"}, fake.transcripts)
}

func TestDispatchClientMessageDiscardsInfoFrames(t *testing.T) {
	// frame informasi dari engine STT tidak punya objek result,
	// dan tidak boleh sampai ke transkrip
	fake := &fakeCommands{}
	frames := []string{
		`{"type":"transcript"}`,
		`{"type":"transcript","result":null}`,
		`{"type":"transcript","result":{"transcript":""}}`,
	}
	for _, raw := range frames {
		dispatchClientMessage(fake, decodeFrame(t, raw))
	}
	assert.Empty(t, fake.calls)
}

func TestDispatchClientMessageDiscardClosesConnection(t *testing.T) {
	fake := &fakeCommands{}
	assert.True(t, dispatchClientMessage(fake, decodeFrame(t, `{"type":"discard"}`)))
	assert.Equal(t, []string{"discard"}, fake.calls)
}

func TestDispatchClientMessageWebcam(t *testing.T) {
	fake := &fakeCommands{}
	dispatchClientMessage(fake, decodeFrame(t, `{"type":"webcam","on":true}`))
	dispatchClientMessage(fake, decodeFrame(t, `{"type":"webcam","on":false}`))
	dispatchClientMessage(fake, decodeFrame(t, `{"type":"webcam_error"}`))
	assert.Equal(t, []string{"webcam", "webcam", "webcam_error"}, fake.calls)
	assert.Equal(t, []bool{true, false}, fake.webcamOn)
}

func TestDispatchClientMessageUnknownType(t *testing.T) {
	fake := &fakeCommands{}
	assert.False(t, dispatchClientMessage(fake, decodeFrame(t, `{"type":"ping"}`)))
	assert.Empty(t, fake.calls)
}
