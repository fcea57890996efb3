package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

const formulaDoc = `
functions:
  - name: f
    args: [Int]
    returns: Int
variables:
  - name: x
    sort: Int
  - name: y
    sort: Int
assert:
  - op: eq
    args:
      - {op: apply, name: f, args: [{op: var, name: x}]}
      - {op: apply, name: f, args: [{op: var, name: y}]}
`

func TestEliminateWritesThroughCommandWriters(t *testing.T) {
	g := NewGomegaWithT(t)
	file := filepath.Join(t.TempDir(), "formula.yaml")
	g.Expect(os.WriteFile(file, []byte(formulaDoc), 0666)).To(Succeed())

	var stdout, stderr bytes.Buffer
	eliminateCmd := NewEliminateCmd()
	eliminateCmd.SetOut(&stdout)
	eliminateCmd.SetErr(&stderr)
	eliminateCmd.SetArgs([]string{"-i", file, "--substitution"})
	g.Expect(eliminateCmd.Execute()).To(Succeed())

	g.Expect(stdout.String()).To(ContainSubstring("(declare-fun x () Int)"))
	g.Expect(stdout.String()).To(ContainSubstring("(assert "))
	g.Expect(stdout.String()).ToNot(ContainSubstring("Replacing:"))
	g.Expect(stderr.String()).To(ContainSubstring("Replacing:"))
	g.Expect(stderr.String()).To(ContainSubstring("Replaced 2 applications"))
}
