package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetListFlags(t *testing.T) {
	t.Helper()
	originalRepoPath := repoPath
	t.Cleanup(func() {
		repoPath = originalRepoPath
		listVerbose = false
		listPaths = false
	})
}

func TestListCommandStructure(t *testing.T) {
	assert.NotNil(t, listCmd)
	assert.Equal(t, "list-packages", listCmd.Use)
	assert.NotEmpty(t, listCmd.Short)
	assert.NotEmpty(t, listCmd.Long)
	assert.NotNil(t, listCmd.RunE)
}

func TestListIsAddedToRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "list-packages" {
			found = true
			break
		}
	}
	assert.True(t, found, "list-packages command should be added to root command")
}

func TestRunListPackages(t *testing.T) {
	resetListFlags(t)
	repoPath = fixtureRepo(t)

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	require.NoError(t, runListPackages(listCmd, nil))
	assert.Equal(t, []string{"alpha", "beta"}, strings.Fields(buf.String()))
}

func TestRunListPackagesPaths(t *testing.T) {
	resetListFlags(t)
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	writeFixtureFile(t, dir, "group/gamma/PKGBUILD", "pkgver=1\npkgrel=1\n")

	repoPath = dir
	listPaths = true

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	require.NoError(t, runListPackages(listCmd, nil))
	assert.Equal(t, "group/gamma", strings.TrimSpace(buf.String()))
}

func TestRunListPackagesVerbose(t *testing.T) {
	resetListFlags(t)
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	writeFixtureFile(t, dir, "alpha/PKGBUILD", "pkgver=1.0.0\npkgrel=1\n")
	writeFixtureFile(t, dir, "broken/PKGBUILD", "pkgver=\npkgrel=1\n")

	repoPath = dir
	listVerbose = true

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	require.NoError(t, runListPackages(listCmd, nil))

	output := buf.String()
	assert.Contains(t, output, "1.0.0-1")
	assert.Contains(t, output, "<version unknown>")
}

func TestRunListPackagesEmptyRepo(t *testing.T) {
	resetListFlags(t)
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	repoPath = dir

	var buf bytes.Buffer
	listCmd.SetOut(&buf)

	require.NoError(t, runListPackages(listCmd, nil))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}

func TestRunListPackagesNotARepository(t *testing.T) {
	resetListFlags(t)
	repoPath = t.TempDir()

	require.Error(t, runListPackages(listCmd, nil))
}
