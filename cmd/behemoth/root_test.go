package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfilesDefaultsWhenNoProfileFileGiven(t *testing.T) {
	old := profileFile
	defer func() { profileFile = old }()
	profileFile = ""

	f, err := loadProfiles()
	require.NoError(t, err)
	assert.Contains(t, f.Profiles, "andnot")
	assert.Contains(t, f.Profiles, "ltl")
	assert.Contains(t, f.Profiles, "ctl")
}

func TestAliasCmdIsNamedAfterTheProfile(t *testing.T) {
	old := enumProfile
	defer func() { enumProfile = old }()

	cmd := aliasCmd("ctl")
	assert.Equal(t, "ctl", cmd.Use)
}
