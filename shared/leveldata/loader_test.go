package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stageTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="32" height="18" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="6">
 <properties>
  <property name="visibleWidth" type="int" value="600"/>
 </properties>
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="320" width="240" height="40"/>
  <object id="2" class="floating" x="260" y="240" width="100" height="20">
   <properties>
    <property name="travel" type="float" value="40"/>
   </properties>
  </object>
  <object id="3" class="floating" x="250" y="120" width="140" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="4" x="520" y="260">
   <properties>
    <property name="character" value="viga"/>
   </properties>
   <point/>
  </object>
  <object id="5" x="120" y="260">
   <properties>
    <property name="character" value="guile"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const plainTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <properties>
  <property name="author" value="test"/>
 </properties>
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="64" width="160" height="16"/>
 </objectgroup>
</map>
`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <properties>
  <property name="author" value="test"/>
 </properties>
 <objectgroup id="1" name="Platforms"/>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/stage.tmx": {Data: []byte(stageTMX)},
		"levels/plain.tmx": {Data: []byte(plainTMX)},
	}
}

func TestLoadStage(t *testing.T) {
	stage, err := LoadStage(testFS(), "levels/stage.tmx")
	require.NoError(t, err)

	assert.Equal(t, "stage", stage.Name)
	assert.Equal(t, 640, stage.Width)
	assert.Equal(t, 360, stage.Height)
	assert.Equal(t, 600, stage.VisibleWidth)
	assert.Equal(t, 20, stage.TileWidth)

	require.Len(t, stage.Platforms, 3)
	assert.Equal(t, Platform{X: 0, Y: 320, W: 240, H: 40}, stage.Platforms[0])
	assert.True(t, stage.Platforms[1].Floating)
	assert.Equal(t, 40.0, stage.Platforms[1].Travel)
	assert.True(t, stage.Platforms[2].Floating)
	assert.Equal(t, float64(DefaultTravel), stage.Platforms[2].Travel)

	require.Len(t, stage.Spawns, 2)
	assert.Equal(t, "guile", stage.Spawns[0].Character, "spawns are sorted left to right")
	assert.Equal(t, "viga", stage.Spawns[1].Character)

	sp, ok := stage.SpawnFor("viga")
	require.True(t, ok)
	assert.Equal(t, 520.0, sp.X)
	assert.Equal(t, 260.0, sp.Y)

	_, ok = stage.SpawnFor("nobody")
	assert.False(t, ok)
}

func TestLoadStageVisibleWidthDefaultsToMapWidth(t *testing.T) {
	stage, err := LoadStage(testFS(), "levels/plain.tmx")
	require.NoError(t, err)

	assert.Equal(t, 160, stage.Width)
	assert.Equal(t, 160, stage.VisibleWidth)
	assert.Empty(t, stage.Spawns)
}

func TestLoadStageErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(emptyTMX)},
	}

	_, err := LoadStage(fsys, "missing.tmx")
	assert.Error(t, err)

	_, err = LoadStage(fsys, "empty.tmx")
	assert.ErrorContains(t, err, "no platforms")
}

func TestLoadAllStages(t *testing.T) {
	stages, names, err := LoadAllStages(testFS(), "levels")
	require.NoError(t, err)

	assert.Equal(t, []string{"plain", "stage"}, names)
	assert.Len(t, stages, 2)
	assert.Equal(t, 600, stages["stage"].VisibleWidth)

	_, _, err = LoadAllStages(testFS(), "nowhere")
	assert.Error(t, err)
}
