// Package ui contains the Bubble Tea program for browsing reddit feeds.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses go to the current screen on the navigation Stack. Only the
//     current screen is rendered.
//
// Screens:
//   - feedListScreen is the root. Popping it ends the program.
//   - customSubredditScreen validates a typed name and opens its listing.
//   - postListScreen fetches, refreshes and paginates a feed.
//   - postDetailScreen shows one post and loads its image.
//
// Background work:
//   - Screens start tasks through internal/ui/command. Each task runs under
//     the owning screen's lifetime context, which the Stack cancels on pop.
//   - Finished tasks come back as command.ResultMsg. The dispatcher in
//     internal/data/dispatcher drops results whose owner is no longer mounted.
package ui
