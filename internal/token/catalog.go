// Copyright (c) 2026 Fandou Miao (fdmiao). All rights reserved.
// Use of this source code is governed by the MIT License.
//
// FFmpegTool - FFmpeg 命令行构建与执行工具

package token

// Closed catalogue of well-known FFmpeg fragments. Using these instead of raw
// strings at call sites catches misspelled flags at compile time; the
// catalogue carries no knowledge of flag ordering or compatibility, that is
// still ffmpeg's business. Sort in alphabetical order - 按首字母排序,
// 如果没有找到自己需要的, 请使用 FromLiteral 自行添加.

// Program name and codec/format literals.
var (
	FFmpeg = FromLiteral("ffmpeg") //  ffmpeg

	AAC   = FromLiteral("aac")   //  aac
	Copy  = FromLiteral("copy")  //  copy
	GIF   = FromLiteral("gif")   //  gif
	HLS   = FromLiteral("hls")   //  hls
	M4V   = FromLiteral("m4v")   //  m4v
	MP3   = FromLiteral("mp3")   //  mp3
	MPEG4 = FromLiteral("mpeg4") //  mpeg4
)

// Option flags.
var (
	AB     = FromLiteral("-ab")     //  -ab
	AC     = FromLiteral("-ac")     //  -ac
	ACodec = FromLiteral("-acodec") //  -acodec
	AF     = FromLiteral("-af")     //  -af
	AN     = FromLiteral("-an")     //  -an
	AR     = FromLiteral("-ar")     //  -ar
	Aspect = FromLiteral("-aspect") //  -aspect
	Author = FromLiteral("-author") //  -author

	B  = FromLiteral("-b")  //  -b
	BF = FromLiteral("-bf") //  -bf
	BT = FromLiteral("-bt") //  -bt

	CropTop    = FromLiteral("-croptop")    //  -croptop
	CropBottom = FromLiteral("-cropbottom") //  -cropbottom
	CropLeft   = FromLiteral("-cropleft")   //  -cropleft
	CropRight  = FromLiteral("-cropright")  //  -cropright

	Deinterlace = FromLiteral("-deinterlace") //  -deinterlace

	F = FromLiteral("-f") //  -f

	G = FromLiteral("-g") //  -g

	HQ = FromLiteral("-hq") //  -hq

	I         = FromLiteral("-i")         //  -i
	Interlace = FromLiteral("-interlace") //  -interlace
	Intra     = FromLiteral("-intra")     //  -intra
	ItsOffset = FromLiteral("-itsoffset") //  -itsoffset

	PadTop    = FromLiteral("-padtop")    //  -padtop
	PadBottom = FromLiteral("-padbottom") //  -padbottom
	PadLeft   = FromLiteral("-padleft")   //  -padleft
	PadRight  = FromLiteral("-padright")  //  -padright
	PadColor  = FromLiteral("-padcolor")  //  -padcolor
	Part      = FromLiteral("-part")      //  -part
	Pass      = FromLiteral("-pass")      //  -pass
	PS        = FromLiteral("-ps")        //  -ps

	QBlur  = FromLiteral("-qblur")  //  -qblur
	QMax   = FromLiteral("-qmax")   //  -qmax
	QMin   = FromLiteral("-qmin")   //  -qmin
	QScale = FromLiteral("-qscale") //  -qscale

	R = FromLiteral("-r") //  -r

	S      = FromLiteral("-s")      //  -s
	SS     = FromLiteral("-ss")     //  -ss
	Strict = FromLiteral("-strict") //  -strict

	T      = FromLiteral("-t")      //  -t
	Target = FromLiteral("-target") //  -target
	Title  = FromLiteral("-title")  //  -title

	VC     = FromLiteral("-vc")     //  -vc
	VCodec = FromLiteral("-vcodec") //  -vcodec
	VD     = FromLiteral("-vd")     //  -vd
	VF     = FromLiteral("-vf")     //  -vf
	VN     = FromLiteral("-vn")     //  -vn

	Y = FromLiteral("-y") //  -y
)
