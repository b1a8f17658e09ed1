package judge

import (
	"bufio"
	"io"
	"os"

	jerrors "secjudge/errors"
)

// CompareFiles runs the two-pass comparator described in spec.md §4.3: an
// exact byte comparison, falling back to a whitespace-insensitive,
// case-insensitive comparison. It returns Accepted, PresentationError, or
// WrongAnswer.
func CompareFiles(referencePath, outputPath string) (VerdictKind, error) {
	exact, err := compareContent(referencePath, outputPath, false)
	if err != nil {
		return 0, jerrors.Wrap(err, jerrors.ErrJudgeIO, "compare output")
	}
	if exact {
		return Accepted, nil
	}

	forgiving, err := compareContent(referencePath, outputPath, true)
	if err != nil {
		return 0, jerrors.Wrap(err, jerrors.ErrJudgeIO, "compare output")
	}
	if forgiving {
		return PresentationError, nil
	}
	return WrongAnswer, nil
}

func compareContent(path1, path2 string, forgiving bool) (bool, error) {
	f1, err := os.Open(path1)
	if err != nil {
		return false, err
	}
	defer f1.Close()

	f2, err := os.Open(path2)
	if err != nil {
		return false, err
	}
	defer f2.Close()

	r1 := bufio.NewReader(f1)
	r2 := bufio.NewReader(f2)

	if forgiving {
		return streamEqualForgiving(r1, r2)
	}
	return streamEqualExact(r1, r2)
}

func streamEqualExact(r1, r2 *bufio.Reader) (bool, error) {
	for {
		b1, err1 := r1.ReadByte()
		b2, err2 := r2.ReadByte()

		eof1, eof2 := err1 == io.EOF, err2 == io.EOF
		if err1 != nil && !eof1 {
			return false, err1
		}
		if err2 != nil && !eof2 {
			return false, err2
		}
		if eof1 != eof2 {
			return false, nil
		}
		if eof1 {
			return true, nil
		}
		if b1 != b2 {
			return false, nil
		}
	}
}

func streamEqualForgiving(r1, r2 *bufio.Reader) (bool, error) {
	for {
		b1, ok1, err1 := nextSignificantByte(r1)
		if err1 != nil {
			return false, err1
		}
		b2, ok2, err2 := nextSignificantByte(r2)
		if err2 != nil {
			return false, err2
		}
		if ok1 != ok2 {
			return false, nil
		}
		if !ok1 {
			return true, nil
		}
		if b1 != b2 {
			return false, nil
		}
	}
}

// nextSignificantByte advances r past ASCII whitespace and returns the next
// byte upper-cased, or ok=false at end of stream.
func nextSignificantByte(r *bufio.Reader) (b byte, ok bool, err error) {
	for {
		c, readErr := r.ReadByte()
		if readErr != nil {
			if readErr == io.EOF {
				return 0, false, nil
			}
			return 0, false, readErr
		}
		if isASCIIWhitespace(c) {
			continue
		}
		return toASCIIUpper(c), true, nil
	}
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func toASCIIUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
