package blacklist_test

import (
	"phishguard/internal/blacklist"
	"phishguard/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	feed := strings.Join([]string{
		"# openphish",
		"https://secure-login.evil.example/paypal/",
		"",
		"   ",
		"http://www.Phish.Example/x?y=1",
		"bare.example",
		"bare.example",
		"192.0.2.10",
		"not a domain",
		"localhost",
	}, "\n")

	res, err := blacklist.Parse(strings.NewReader(feed))
	require.NoError(t, err)
	require.Equal(t, []string{
		"secure-login.evil.example",
		"phish.example",
		"bare.example",
		"192.0.2.10",
	}, res.Domains)
	require.Equal(t, 2, res.Skipped)
}

func TestParse_Empty(t *testing.T) {
	res, err := blacklist.Parse(strings.NewReader("\n\n# nothing\n"))
	require.NoError(t, err)
	require.Empty(t, res.Domains)
}

func TestParse_NoValidDomain(t *testing.T) {
	_, err := blacklist.Parse(strings.NewReader("<html>\n<body>oops</body>\n</html>\n"))
	require.ErrorIs(t, err, serrors.ErrParse)
}

func TestParse_LineTooLong(t *testing.T) {
	_, err := blacklist.Parse(strings.NewReader("https://a.example/" + strings.Repeat("a", 70*1024)))
	require.ErrorIs(t, err, serrors.ErrParse)
}
