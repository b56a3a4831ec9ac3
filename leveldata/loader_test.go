package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tilesetXML = `
 <tileset firstgid="1" name="tiles" tilewidth="8" tileheight="8" tilecount="4" columns="4">
  <image source="tiles.png" width="32" height="8"/>
  <tile id="1">
   <properties>
    <property name="platform" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>`

const ridgeTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="6" height="4" tilewidth="8" tileheight="8" infinite="0" nextlayerid="5" nextobjectid="9">` + tilesetXML + `
 <layer id="1" name="terrain" width="6" height="4">
  <data encoding="csv">
1,0,0,0,0,1,
1,0,2,2,0,1,
1,0,0,0,0,1,
1,1,1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="Entities">
  <object id="1" name="start" class="Player" x="12" y="20">
   <point/>
  </object>
  <object id="2" name="later" class="spawn" x="30" y="20">
   <point/>
  </object>
  <object id="3" class="spring" x="32" y="20" width="8" height="4"/>
  <object id="4" type="SnowPile" x="24" y="16" width="8" height="8"/>
  <object id="7" class="Trap" x="32" y="16" width="8" height="2"/>
 </objectgroup>
 <objectgroup id="3" name="Hazards">
  <object id="5" x="8" y="22" width="16" height="2"/>
 </objectgroup>
 <objectgroup id="4" name="Platforms">
  <object id="6" x="8" y="4" width="8" height="2"/>
 </objectgroup>
</map>
`

const emptyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="8" tileheight="8" infinite="0" nextlayerid="2" nextobjectid="1">` + tilesetXML + `
 <layer id="1" name="terrain" width="2" height="2">
  <data encoding="csv">
0,0,
1,1
</data>
 </layer>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/ridge.tmx": {Data: []byte(ridgeTMX)}}

	level, err := Load(fsys, "levels/ridge.tmx")
	require.NoError(t, err)

	assert.Equal(t, "ridge", level.Name)
	assert.Equal(t, 48, level.MapWidth)
	assert.Equal(t, 32, level.MapHeight)
	assert.Equal(t, 8, level.TileSize)

	assert.Equal(t, []Rect{
		{X: 0, Y: 0, W: 8, H: 32},
		{X: 40, Y: 0, W: 8, H: 32},
		{X: 8, Y: 24, W: 32, H: 8},
	}, level.Terrain)
	assert.Equal(t, []Rect{
		{X: 16, Y: 8, W: 16, H: 8},
		{X: 8, Y: 4, W: 8, H: 2},
	}, level.Platforms, "platform tiles first, then platform objects")

	assert.Equal(t, Point{X: 12, Y: 20}, level.Spawn)
	assert.Equal(t, []Rect{{X: 32, Y: 20, W: 8, H: 4}}, level.Springs)
	assert.Equal(t, []Rect{{X: 24, Y: 16, W: 8, H: 8}}, level.SnowPiles)
	assert.Equal(t, []Rect{
		{X: 32, Y: 16, W: 8, H: 2},
		{X: 8, Y: 22, W: 16, H: 2},
	}, level.Hazards, "traps from Entities come before the Hazards group")
}

func TestLoadWithoutSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyTMX)}}

	_, err := Load(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.ErrorContains(t, err, "load TMX nope.tmx")
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":   {Data: []byte(ridgeTMX)},
		"levels/a.tmx":   {Data: []byte(ridgeTMX)},
		"levels/x.txt":   {Data: []byte("not a level")},
		"other/skip.tmx": {Data: []byte(emptyTMX)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)
	assert.Equal(t, "b", levels["b"].Name)

	_, _, err = LoadAll(fsys, "missing")
	assert.ErrorContains(t, err, "no .tmx files")

	_, _, err = LoadAll(fsys, "other")
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestMergeBlocks(t *testing.T) {
	// ##.
	// ###
	cells := []bool{
		true, true, false,
		true, true, true,
	}
	rects := mergeBlocks(cells, 3, 2, 8, 8)
	assert.Equal(t, []Rect{
		{X: 0, Y: 0, W: 16, H: 16},
		{X: 16, Y: 8, W: 8, H: 8},
	}, rects)
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, Point{X: 5, Y: 10}, Rect{X: 0, Y: 4, W: 10, H: 12}.Center())
}
