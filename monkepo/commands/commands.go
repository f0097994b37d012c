package commands

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Monkepo,
	Battle,
	Dex,
	Admin,
	Version,
}
