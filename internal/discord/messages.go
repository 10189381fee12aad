package discord

// Friendly message constants for Discord responses
const (
	MsgNotFound          = "❓ **Not Found**\nMaybe check the spelling?"
	MsgBadTeam           = "⚠️ **That team won't work**"
	MsgConflict          = "🏁 **That battle is already over**"
	MsgRateLimited       = "⏳ **Whoa there!**\nToo many battles at once, try again in a few minutes."
	MsgUpstreamBusy      = "🌐 **Creature data is unavailable**\nThe dex could not be reached, try again shortly."
	MsgTimeout           = "⌛ **The battle took too long**\nTry smaller teams."
	MsgServerUnreachable = "❌ Error connecting to the battle server."
	MsgGenericError      = "❌ Something went wrong."
)

// Embed colors
const (
	ColorRed   = 0xe74c3c
	ColorBlue  = 0x3498db
	ColorDraw  = 0x95a5a6
	ColorGold  = 0xf1c40f
	ColorTeal  = 0x1abc9c
	ColorMagic = 0x9b59b6
)

// PresenceWatching is shown as "Watching ..." under the bot's name
const PresenceWatching = "creatures battle | /battle"
