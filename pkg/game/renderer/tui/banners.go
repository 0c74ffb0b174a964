package tui

import "factmaster/pkg/game/renderer"

const openingArt = `
    ███████╗ █████╗  ██████╗████████╗    ███╗   ███╗ █████╗ ███████╗████████╗███████╗██████╗
    ██╔════╝██╔══██╗██╔════╝╚══██╔══╝    ████╗ ████║██╔══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗
    █████╗  ███████║██║        ██║       ██╔████╔██║███████║███████╗   ██║   █████╗  ██████╔╝
    ██╔══╝  ██╔══██║██║        ██║       ██║╚██╔╝██║██╔══██║╚════██║   ██║   ██╔══╝  ██╔══██╗
    ██║     ██║  ██║╚██████╗   ██║       ██║ ╚═╝ ██║██║  ██║███████║   ██║   ███████╗██║  ██║
    ╚═╝     ╚═╝  ╚═╝ ╚═════╝   ╚═╝       ╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝

    Every round shows two article summaries. One of them is real, the other is made up.
    Take turns guessing which one is the fake. Correct guesses score points, and a
    streak of correct guesses scores bonus points.

    Type "quit" at any prompt to end the game early.
`

const headerArt = `
    ▗▄▄▄▖ ▗▄▖  ▗▄▄▖▗▄▄▄▖     ▗▄▖ ▗▄▄▖     ▗▄▄▄▖ ▗▄▖ ▗▖ ▗▖▗▄▄▄▖
    ▐▌   ▐▌ ▐▌▐▌     █      ▐▌ ▐▌▐▌ ▐▌    ▐▌   ▐▌ ▐▌▐▌▗▞▘▐▌
    ▐▛▀▀▘▐▛▀▜▌▐▌     █      ▐▌ ▐▌▐▛▀▚▖    ▐▛▀▀▘▐▛▀▜▌▐▛▚▖ ▐▛▀▀▘
    ▐▌   ▐▌ ▐▌▝▚▄▄▖  █      ▝▚▄▞▘▐▌ ▐▌    ▐▌   ▐▌ ▐▌▐▌ ▐▌▐▙▄▄▖
`

const closingArt = `
     ██████╗  █████╗ ███╗   ███╗███████╗     ██████╗ ██╗   ██╗███████╗██████╗
    ██╔════╝ ██╔══██╗████╗ ████║██╔════╝    ██╔═══██╗██║   ██║██╔════╝██╔══██╗
    ██║  ███╗███████║██╔████╔██║█████╗      ██║   ██║██║   ██║█████╗  ██████╔╝
    ██║   ██║██╔══██║██║╚██╔╝██║██╔══╝      ██║   ██║╚██╗ ██╔╝██╔══╝  ██╔══██╗
    ╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗    ╚██████╔╝ ╚████╔╝ ███████╗██║  ██║
     ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝     ╚═════╝   ╚═══╝  ╚══════╝╚═╝  ╚═╝

    THANKS FOR PLAYING
    We hope you had fun and learned something new.
`

var banners = map[renderer.Banner]string{
	renderer.BannerOpening: openingArt,
	renderer.BannerHeader:  headerArt,
	renderer.BannerClosing: closingArt,
}
