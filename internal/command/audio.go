package command

import (
	"errors"
	"fmt"

	"github.com/colobot/colobot-sub009/internal/condition"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/parser"
)

const musicDir = "music"

var errTrackAndFilename = errors.New("track and filename cannot be used together")

func cacheMusic(ctx *engine.SceneBuildContext, file string) {
	if file != "" {
		ctx.Collab.Audio.CacheMusic(file)
	}
}

func cacheAudio(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)
	file := r.path("filename", musicDir)
	if r.Err() != nil {
		return r.Err()
	}
	cacheMusic(ctx, file)
	return nil
}

func audioChange(ctx *engine.SceneBuildContext, line *parser.Line) error {
	c := &condition.AudioChangeCondition{}
	if err := c.Read(line, ctx.Unit); err != nil {
		return err
	}
	warnLegacyArea(ctx, line)

	ctx.World.AudioChange = append(ctx.World.AudioChange, c)
	cacheMusic(ctx, c.Music)
	return nil
}

func audio(ctx *engine.SceneBuildContext, line *parser.Line) error {
	r := newReader(line)

	var mainFile string
	if r.has("track") {
		if r.has("filename") {
			return errTrackAndFilename
		}
		track := r.int("track")
		if r.Err() != nil {
			return r.Err()
		}
		ctx.LineLog(line).Warn("track is deprecated, use filename")
		if track != 0 {
			mainFile = fmt.Sprintf("music/music%03d.ogg", track)
		}
	} else {
		mainFile = r.pathOr("filename", musicDir, "")
	}

	repeat := r.boolOr("repeat", true)
	satcom := r.pathOr("satcom", musicDir, "")
	satcomRepeat := r.boolOr("satcomRepeat", true)
	editor := r.pathOr("editor", musicDir, "")
	editorRepeat := r.boolOr("editorRepeat", true)
	if r.Err() != nil {
		return r.Err()
	}

	w := ctx.World
	w.MainTrack = engine.AudioTrack{File: mainFile, Repeat: repeat}
	w.SatcomTrack = engine.AudioTrack{File: satcom, Repeat: satcomRepeat}
	w.EditorTrack = engine.AudioTrack{File: editor, Repeat: editorRepeat}

	cacheMusic(ctx, mainFile)
	cacheMusic(ctx, satcom)
	cacheMusic(ctx, editor)
	ctx.SetProgress(engine.ProgressMusic, "")
	return nil
}

// warnLegacyArea flags conditions relying on the implicit area, which older
// levels did without knowing it covered the whole map.
func warnLegacyArea(ctx *engine.SceneBuildContext, line *parser.Line) {
	if !line.HasParam("pos") || !line.HasParam("dist") {
		ctx.LineLog(line).Warn("pos and dist should be given explicitly, using the whole map")
	}
}
