package email

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	raw []byte
}

func (f *fakeSES) SendRawEmail(_ context.Context, in *ses.SendRawEmailInput, _ ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	f.raw = in.RawMessage.Data
	return &ses.SendRawEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type failingWriter struct {
	budget int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.budget == 0 {
		return 0, io.ErrShortWrite
	}
	f.budget--
	return len(p), nil
}

func TestWriteWrapped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeWrapped(&buf, []byte("abcdefg"), 3))
	assert.Equal(t, "abc\r\ndef\r\ng\r\n", buf.String())

	for _, budget := range []int{0, 1, 3} {
		err := writeWrapped(&failingWriter{budget: budget}, []byte("abcdefg"), 3)
		assert.ErrorIs(t, err, io.ErrShortWrite, "budget %d", budget)
	}
}

func TestBuildEmailBufferRequiresRecipient(t *testing.T) {
	_, err := BuildEmailBuffer(&EmailInfo{From: "a@b.c", Subject: "x"})
	assert.Error(t, err)
}

func TestSendSharedReport(t *testing.T) {
	fake := &fakeSES{}
	m := NewMailer(fake, "reports@rcn.example")

	workbook := bytes.Repeat([]byte("xlsx"), 100)
	err := m.SendSharedReport(context.Background(), SharedReportMail{
		To:           []string{"hr@rcn.example"},
		EmployeeName: "Alice",
		MonthName:    "October 2026",
		URL:          "https://attendance.example/#/share/abc",
		FileName:     "Monthly_Report_October_2026.xlsx",
		ContentType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Workbook:     workbook,
	})
	require.NoError(t, err)

	msg, err := mail.ReadMessage(bytes.NewReader(fake.raw))
	require.NoError(t, err)
	assert.Equal(t, "reports@rcn.example", msg.Header.Get("From"))
	assert.Equal(t, "hr@rcn.example", msg.Header.Get("To"))
	assert.Equal(t, "Attendance report: Alice, October 2026", msg.Header.Get("Subject"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	reader := multipart.NewReader(msg.Body, params["boundary"])
	alt, err := reader.NextPart()
	require.NoError(t, err)
	assert.Contains(t, alt.Header.Get("Content-Type"), "multipart/alternative")

	att, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "Monthly_Report_October_2026.xlsx", att.FileName())
	assert.Equal(t, "base64", att.Header.Get("Content-Transfer-Encoding"))
	body, err := io.ReadAll(att)
	require.NoError(t, err)
	for _, line := range bytes.Split(bytes.TrimSpace(body), []byte("\r\n")) {
		assert.LessOrEqual(t, len(line), 76)
	}

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}
