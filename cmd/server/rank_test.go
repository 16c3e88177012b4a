package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medalboard/internal/engine"
	"medalboard/internal/models"
)

func rankDataset() *engine.Dataset {
	return engine.NewDataset("test", []models.Record{
		{Year: 2016, HostCity: "Rio de Janeiro", HostCountry: "Brazil", CountryName: "United States", Gold: 46, Silver: 37, Bronze: 38},
		{Year: 2016, HostCity: "Rio de Janeiro", HostCountry: "Brazil", CountryName: "Great Britain", Gold: 27, Silver: 23, Bronze: 17},
		{Year: 2016, HostCity: "Rio de Janeiro", HostCountry: "Brazil", CountryName: "China", Gold: 26, Silver: 18, Bronze: 26},
		{Year: 1896, HostCity: "Athens", HostCountry: "Greece", CountryName: "Greece", Gold: 10, Silver: 18, Bronze: 19},
	})
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRanking(&buf, rankDataset(), 2016, models.OrderDescending))

	out := buf.String()
	assert.Contains(t, out, "2016 Summer Olympics, Rio de Janeiro, Brazil")

	usa := strings.Index(out, "United States")
	chn := strings.Index(out, "China")
	gbr := strings.Index(out, "Great Britain")
	require.True(t, usa > 0 && chn > 0 && gbr > 0, out)
	assert.Less(t, usa, chn)
	assert.Less(t, chn, gbr)
	assert.Contains(t, out, "121")
}

func TestPrintRanking_DefaultYear(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRanking(&buf, rankDataset(), 0, models.OrderAscending))
	assert.Contains(t, buf.String(), "1896 Summer Olympics, Athens, Greece")
}

func TestPrintRanking_UnknownYear(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRanking(&buf, rankDataset(), 1980, models.OrderDescending))
	assert.Equal(t, "no results for 1980\n", buf.String())
}

func TestRankCmd(t *testing.T) {
	path := t.TempDir() + "/olympics.csv"
	require.NoError(t, os.WriteFile(path, []byte("Year,Host_city,Host_country,Country_Name,Country_Code,Continent,Gold,Silver,Bronze,Total_Medals\n"+
		"2016,Rio de Janeiro,Brazil,Kenya,KEN,Africa,6,6,1,13\n"), 0o600))
	t.Setenv("MEDALBOARD_DATA_PATH", path)

	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"rank", "--year", "2016"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Kenya")
	assert.Contains(t, buf.String(), "13")
}
