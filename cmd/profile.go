package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/careerquest/internal/catalog"
	"github.com/abhisek/careerquest/internal/locale"
)

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().String("stage", "", `education stage: "9th/10th", "11th/12th", "After 12th" or "Post-Graduation"`)
	cmd.Flags().String("stream", "", "stream from 11th/12th on: PCM, PCB, Commerce or Arts")
	cmd.Flags().String("exam", "", "entrance exam being prepared for, e.g. JEE, NEET or CLAT")
	cmd.Flags().String("degree", "", "undergraduate degree of a Post-Graduation learner, e.g. B.Tech or MBBS")
}

func profileFromFlags(cmd *cobra.Command) (catalog.Profile, error) {
	stage, _ := cmd.Flags().GetString("stage")
	stream, _ := cmd.Flags().GetString("stream")
	exam, _ := cmd.Flags().GetString("exam")
	degree, _ := cmd.Flags().GetString("degree")
	return catalog.ParseProfile(stage, stream, exam, degree)
}

func addLocaleFlag(cmd *cobra.Command) {
	cmd.Flags().String("lang", string(locale.Default), "output language: en or hi")
}

func localeFromFlags(cmd *cobra.Command) locale.Locale {
	lang, _ := cmd.Flags().GetString("lang")
	return locale.Parse(lang)
}
