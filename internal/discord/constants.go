package discord

import "time"

// Command names
const (
	CmdBalance      = "balance"
	CmdGive         = "give"
	CmdInventory    = "inventory"
	CmdProfile      = "profile"
	CmdCharacter    = "character"
	CmdLeaderboard  = "leaderboard"
	CmdStore        = "store"
	CmdBuy          = "buy"
	CmdHelp         = "help"
	CmdMoney        = "money"
	CmdItem         = "item"
	CmdPerk         = "perk"
	CmdAssignCrowns = "assigncrowns"
	CmdExport       = "export"
)

// Sub-command verbs
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionList   = "list"
)

// Limits of the chat platform and of the command surface
const (
	MaxMessageLength   = 2000
	LeaderboardSize    = 10
	RosterPageSize     = 1000
	DefaultInteraction = 5 * time.Minute
)

// Friendly message constants for chat responses
const (
	MsgBalanceFmt          = "Hello %s! You have %d Crowns."
	MsgGiveFmt             = "%s gave %d Crowns to %s!"
	MsgGiveUsage           = "Syntax: **%sgive <amount> @user**"
	MsgInventoryHeader     = "Your inventory:"
	MsgInventoryEmpty      = "Your inventory is empty."
	MsgNoItems             = "No items."
	MsgNoCharacters        = "No characters."
	MsgProfileFmt          = "**%s's Profile**\n%s's bank has %d Crowns.\n\n**Inventory**\n%s\n\n**Characters**\n%s"
	MsgCharacterAddedFmt   = "Character '%s' added successfully!"
	MsgCharacterRemovedFmt = "Character '%s' removed successfully!"
	MsgCharacterMissingFmt = "No character named '%s' on your profile."
	MsgCharacterUsageFmt   = "Syntax: **%scharacter add <name> <title> <URL>** or **%scharacter remove <name>**"
	MsgCharacterHelpOffer  = "I can offer you guidance. Would you like some help? [y/n]"
	MsgCharacterHelpNo     = "No problemo! Please retry the command when you're ready or poke a mod if you'd prefer a human to help c:"
	MsgCharacterAskName    = "Please type the name of your character:"
	MsgCharacterAskTitle   = "Awesome! Please type the title of your character:"
	MsgCharacterAskURL     = "Great! One last thing: please give me the link to your character sheet:"
	MsgCharacterEmptyName  = "Character name cannot be empty. Please try again."
	MsgLeaderboardHeader   = "🏆 **Leaderboard** 🏆"
	MsgLeaderboardRowFmt   = "%d. %s: %d Crowns"
	MsgLeaderboardEmpty    = "Nobody has earned any Crowns yet."
	MsgStoreEmpty          = "The store is empty!"
	MsgStoreHeader         = "Welcome to the Grim Armory! Pick a category by number or name:"
	MsgStoreCategoryFmt    = "**%s**"
	MsgStoreItemFmt        = "%s: %d Crowns"
	MsgStoreFooterFmt      = "Use `%sbuy <item> [quantity]` to buy an item from the store."
	MsgStoreUnknownCat     = "That category does not exist. Run the store command again to see the list."
	MsgBuyUsageFmt         = "Syntax: **%sbuy <item> [quantity]**"
	MsgBuyConfirmFmt       = "Buy %dx %s for %d Crowns? You have %d. Reply **yes** to confirm."
	MsgBuyTooExpensiveFmt  = "You don't have enough Crowns to buy %s. You need %d Crowns."
	MsgBuyDoneFmt          = "Successfully bought %dx %s for %d Crowns! You now have %d Crowns left."
	MsgBuyCancelled        = "Purchase cancelled."
	MsgTimedOut            = "You took too long to respond! Please try the command again."
	MsgHelpHeader          = "**Bot Commands**\nHere is a list of commands you can use with this bot:"
	MsgUnknownSubcommand   = "Invalid action. Use 'add' or 'remove'."
	MsgMoneyFmt            = "Adjusted %s's balance by %d. New balance: %d Crowns."
	MsgMoneyUsageFmt       = "Syntax: **%smoney <amount> @user**"
	MsgItemFmt             = "Adjusted %s's %s by %d."
	MsgItemUsageFmt        = "Syntax: **%sitem @user <item> <quantity>**"
	MsgPerkAddedFmt        = "Perk '%s' (+%d Crowns) bound to role %s."
	MsgPerkRemovedFmt      = "Perk for role %s removed."
	MsgPerkUsageFmt        = "Syntax: **%sperk add <@role> <bonus> <name>**, **%sperk remove <@role>** or **%sperk list**"
	MsgPerkListEmpty       = "No perks configured."
	MsgPerkRowFmt          = "%s (role %s): +%d Crowns"
	MsgPayoutStarting      = "Assigning crowns to members based on their perks..."
	MsgPayoutDoneFmt       = "Crown assignment completed successfully! Credited %d members with %d Crowns."
	MsgPayoutFailuresFmt   = " %d members could not be credited."
	MsgPayoutBusy          = "A crown assignment is already running."
	MsgExportDoneFmt       = "Exported %d accounts."
)

// Confirmation replies accepted by interactive prompts
var confirmReplies = map[string]bool{"y": true, "yes": true}

// Log messages
const (
	LogMsgBotReady          = "Chat bot is ready"
	LogMsgBotStarted        = "Chat bot is now running"
	LogMsgCommandFailed     = "Command failed"
	LogMsgCommandHandled    = "Command handled"
	LogMsgSendFailed        = "Failed to send chat message"
	LogMsgEnqueueFailed     = "Failed to enqueue message grant"
	LogMsgEnsureFailed      = "Failed to register joining member"
	LogMsgMemberJoined      = "Member joined"
	LogMsgPermissionsFailed = "Failed to resolve member permissions"
	LogMsgSessionExpired    = "Interactive session expired"
)

// LogValueSession tags log records emitted while answering an open prompt
const LogValueSession = "reply_session"

// Error messages
const (
	ErrMsgCreateSession = "error creating chat session: %w"
	ErrMsgOpenSession   = "error opening connection: %w"
	ErrMsgFetchMembers  = "fetching guild members after %q: %w"
)
