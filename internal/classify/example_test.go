package classify

import (
	"testing"

	"dropzone/pkg/types"

	alsrt "github.com/alecthomas/assert"
)

// TestReferenceExample pins the canonical mixed-drop scenario: a PNG
// with no MIME type, a text file the accept list does not cover, and a
// JPEG accepted by MIME type.
func TestReferenceExample(t *testing.T) {
	engine := New()
	alsrt.NoError(t, engine.SetAcceptList(types.AcceptList{".png", "image/jpeg"}))

	verdicts := engine.Classify([]types.FileDescriptor{
		{Name: "a.png", MIMEType: ""},
		{Name: "b.txt", MIMEType: "text/plain"},
		{Name: "c.jpg", MIMEType: "image/jpeg"},
	})

	alsrt.Equal(t, 3, len(verdicts))

	alsrt.Equal(t, "a.png", verdicts[0].File.Name)
	alsrt.False(t, verdicts[0].Rejected())

	alsrt.Equal(t, "b.txt", verdicts[1].File.Name)
	alsrt.True(t, verdicts[1].Rejected())
	alsrt.Equal(t, types.ReasonInvalidFileType, verdicts[1].Reason)

	alsrt.Equal(t, "c.jpg", verdicts[2].File.Name)
	alsrt.False(t, verdicts[2].Rejected())
}
