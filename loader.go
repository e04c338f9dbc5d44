package wordforms

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// loadLexicon reads lemma dictionary lines from r. The format is one
// entry per line, "lemma|form1,form2,...", with "!" comment lines and
// blank lines ignored.
func loadLexicon(r io.Reader) (*lexicon, error) {
	lx := newLexicon()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if lemma, forms, ok := parseLexiconLine(sc.Text()); ok {
			lx.addEntry(lemma, forms)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return lx, nil
}

// loadLexiconFile reads a lemma dictionary from a file on disk.
func loadLexiconFile(path string) (*lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	return loadLexicon(f)
}
